package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/anverk/miniblog/internal/apperr"
	"github.com/anverk/miniblog/internal/auth"
	"github.com/anverk/miniblog/models"
)

type PostMemoryStorage struct {
	mu     sync.Mutex
	posts  map[uint]*models.PostView
	nextId uint
}

func NewPostMemoryStorage() *PostMemoryStorage {
	return &PostMemoryStorage{
		posts:  make(map[uint]*models.PostView),
		nextId: 1,
	}
}

func (s *PostMemoryStorage) CreatePost(ctx context.Context, title, body string) (*models.PostView, error) {
	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" {
		return nil, fmt.Errorf("title must not be empty: %w", apperr.ErrValidation)
	}
	if body == "" {
		return nil, fmt.Errorf("body must not be empty: %w", apperr.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post := &models.PostView{
		ID:        s.nextId,
		Title:     title,
		Body:      body,
		UserID:    identity.UserID,
		Author:    identity.Username,
		CreatedAt: time.Now(),
	}
	s.nextId++

	s.posts[post.ID] = post
	return post, nil
}

func (s *PostMemoryStorage) GetPostById(id uint) (*models.PostView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, exists := s.posts[id]
	if !exists {
		return nil, fmt.Errorf("post %d: %w", id, apperr.ErrNotFound)
	}

	return post, nil
}

func (s *PostMemoryStorage) ListPosts(page, limit int) ([]*models.PostView, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]*models.PostView, 0, len(s.posts))
	for _, post := range s.posts {
		all = append(all, post)
	}

	// Новые первыми; при равном времени создания — по убыванию ID,
	// чтобы порядок страниц был стабильным
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})

	total := len(all)
	offset := (page - 1) * limit
	if offset >= total || offset < 0 {
		return []*models.PostView{}, total, nil
	}

	end := offset + limit
	if end > total {
		end = total
	}

	return all[offset:end], total, nil
}
