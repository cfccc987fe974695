package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/anverk/miniblog/internal/apperr"
	"github.com/anverk/miniblog/internal/auth"
	"github.com/anverk/miniblog/internal/post"
	"github.com/anverk/miniblog/models"
)

type CommentMemoryStorage struct {
	mu          sync.Mutex
	comments    map[uint]*models.CommentView
	nextID      uint
	postStorage post.PostStorage // Хранилище постов (внедрение зависимости (DI))
}

func NewCommentMemoryStorage(postStore post.PostStorage) *CommentMemoryStorage {
	return &CommentMemoryStorage{
		comments:    make(map[uint]*models.CommentView),
		nextID:      1,
		postStorage: postStore,
	}
}

func (s *CommentMemoryStorage) CreateComment(ctx context.Context, postID uint, text string) (*models.CommentView, error) {
	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("text must not be empty: %w", apperr.ErrValidation)
	}

	_, err = s.postStorage.GetPostById(postID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("post %d: %w", postID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("could not check post: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	comment := &models.CommentView{
		ID:        s.nextID,
		Text:      text,
		PostID:    postID,
		UserID:    identity.UserID,
		Author:    identity.Username,
		CreatedAt: time.Now(),
	}
	s.nextID++

	s.comments[comment.ID] = comment
	return comment, nil
}

func (s *CommentMemoryStorage) GetComments(postID uint) ([]*models.CommentView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*models.CommentView, 0)
	for _, comment := range s.comments {
		if comment.PostID == postID {
			result = append(result, comment)
		}
	}

	// Старые первыми — разговорный порядок
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}
