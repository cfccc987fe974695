package comment

import (
	"context"

	"github.com/anverk/miniblog/models"
)

type CommentStorage interface {
	CreateComment(ctx context.Context, postID uint, text string) (*models.CommentView, error)
	// GetComments возвращает комментарии поста старые первыми.
	// Неизвестный postID — пустой список, не ошибка.
	GetComments(postID uint) ([]*models.CommentView, error)
}
