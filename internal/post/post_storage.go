package post

import (
	"context"

	"github.com/anverk/miniblog/models"
)

type PostStorage interface {
	CreatePost(ctx context.Context, title, body string) (*models.PostView, error)
	GetPostById(id uint) (*models.PostView, error)
	// ListPosts возвращает страницу постов (новые первыми) и полное число постов.
	ListPosts(page, limit int) ([]*models.PostView, int, error)
}
