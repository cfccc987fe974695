package mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/anverk/miniblog/internal/apperr"
	"github.com/anverk/miniblog/internal/auth"
	"github.com/anverk/miniblog/internal/post"
	"github.com/anverk/miniblog/models"
)

type MockCommentStorage struct {
	mu          sync.Mutex
	comments    []*models.CommentView
	nextID      uint
	postStorage post.PostStorage

	Err error
}

func NewMockCommentStorage(postStore post.PostStorage) *MockCommentStorage {
	return &MockCommentStorage{
		nextID:      1,
		postStorage: postStore,
	}
}

func (m *MockCommentStorage) CreateComment(ctx context.Context, postID uint, text string) (*models.CommentView, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("text must not be empty: %w", apperr.ErrValidation)
	}

	if _, err := m.postStorage.GetPostById(postID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("post %d: %w", postID, apperr.ErrNotFound)
		}
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	comment := &models.CommentView{
		ID:        m.nextID,
		Text:      text,
		PostID:    postID,
		UserID:    identity.UserID,
		Author:    identity.Username,
		CreatedAt: time.Now(),
	}
	m.nextID++

	m.comments = append(m.comments, comment)
	return comment, nil
}

func (m *MockCommentStorage) GetComments(postID uint) ([]*models.CommentView, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]*models.CommentView, 0)
	for _, comment := range m.comments {
		if comment.PostID == postID {
			result = append(result, comment)
		}
	}

	return result, nil
}
