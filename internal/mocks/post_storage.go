package mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/anverk/miniblog/internal/apperr"
	"github.com/anverk/miniblog/internal/auth"
	"github.com/anverk/miniblog/models"
)

type MockPostStorage struct {
	mu     sync.Mutex
	posts  []*models.PostView
	nextID uint

	Err error
}

func NewMockPostStorage() *MockPostStorage {
	return &MockPostStorage{nextID: 1}
}

func (m *MockPostStorage) CreatePost(ctx context.Context, title, body string) (*models.PostView, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" {
		return nil, fmt.Errorf("title and body must not be empty: %w", apperr.ErrValidation)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	post := &models.PostView{
		ID:        m.nextID,
		Title:     title,
		Body:      body,
		UserID:    identity.UserID,
		Author:    identity.Username,
		CreatedAt: time.Now(),
	}
	m.nextID++

	// Новые вставляются в начало — список уже в порядке выдачи
	m.posts = append([]*models.PostView{post}, m.posts...)
	return post, nil
}

func (m *MockPostStorage) GetPostById(id uint) (*models.PostView, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, post := range m.posts {
		if post.ID == id {
			return post, nil
		}
	}

	return nil, fmt.Errorf("post %d: %w", id, apperr.ErrNotFound)
}

func (m *MockPostStorage) ListPosts(page, limit int) ([]*models.PostView, int, error) {
	if m.Err != nil {
		return nil, 0, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	total := len(m.posts)
	offset := (page - 1) * limit
	if offset >= total || offset < 0 {
		return []*models.PostView{}, total, nil
	}

	end := offset + limit
	if end > total {
		end = total
	}

	return m.posts[offset:end], total, nil
}
