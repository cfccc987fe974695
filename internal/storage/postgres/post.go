package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"

	"github.com/anverk/miniblog/internal/apperr"
	"github.com/anverk/miniblog/internal/auth"
	"github.com/anverk/miniblog/models"
)

type PostPostgresStorage struct {
	db *gorm.DB
}

func NewPostPostgresStorage(db *gorm.DB) *PostPostgresStorage {
	return &PostPostgresStorage{db: db}
}

const postColumns = "posts.id, posts.title, posts.body, posts.user_id, posts.created_at, users.username AS author"

func (s *PostPostgresStorage) CreatePost(ctx context.Context, title, body string) (*models.PostView, error) {
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

	post := &models.Post{
		Title:  title,
		Body:   body,
		UserID: identity.UserID,
	}

	err = s.db.Create(post).Error
	if err != nil {
		return nil, fmt.Errorf("could not create post: %w", err)
	}

	// Перечитываем свежую строку вместе с автором
	return s.GetPostById(post.ID)
}

func (s *PostPostgresStorage) GetPostById(id uint) (*models.PostView, error) {
	var view models.PostView
	err := s.db.Model(&models.Post{}).
		Select(postColumns).
		Joins("JOIN users ON users.id = posts.user_id").
		Where("posts.id = ?", id).
		Scan(&view).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, fmt.Errorf("post %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get post by id: %w", err)
	}

	return &view, nil
}

func (s *PostPostgresStorage) ListPosts(page, limit int) ([]*models.PostView, int, error) {
	var total int
	err := s.db.Model(&models.Post{}).Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("could not count posts: %w", err)
	}

	offset := (page - 1) * limit

	views := make([]*models.PostView, 0)
	err = s.db.Model(&models.Post{}).
		Select(postColumns).
		Joins("JOIN users ON users.id = posts.user_id").
		Order("posts.created_at DESC, posts.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&views).Error
	if err != nil {
		return nil, 0, fmt.Errorf("could not get posts: %w", err)
	}

	return views, total, nil
}
