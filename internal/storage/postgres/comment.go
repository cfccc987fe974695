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

type CommentPostgresStorage struct {
	db *gorm.DB
}

func NewCommentPostgresStorage(db *gorm.DB) *CommentPostgresStorage {
	return &CommentPostgresStorage{db: db}
}

func (s *CommentPostgresStorage) CreateComment(ctx context.Context, postID uint, text string) (*models.CommentView, error) {
	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("text must not be empty: %w", apperr.ErrValidation)
	}

	var post models.Post
	err = s.db.First(&post, postID).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, fmt.Errorf("post %d: %w", postID, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("could not check post: %w", err)
	}

	comment := &models.Comment{
		Text:   text,
		PostID: postID,
		UserID: identity.UserID,
	}

	err = s.db.Create(comment).Error
	if err != nil {
		return nil, fmt.Errorf("could not create comment: %w", err)
	}

	return &models.CommentView{
		ID:        comment.ID,
		Text:      comment.Text,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Author:    identity.Username,
		CreatedAt: comment.CreatedAt,
	}, nil
}

func (s *CommentPostgresStorage) GetComments(postID uint) ([]*models.CommentView, error) {
	views := make([]*models.CommentView, 0)
	err := s.db.Model(&models.Comment{}).
		Select("comments.id, comments.text, comments.post_id, comments.user_id, comments.created_at, users.username AS author").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC, comments.id ASC").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("could not get comments: %w", err)
	}

	return views, nil
}
