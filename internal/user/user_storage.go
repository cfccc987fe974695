package user

import (
	"github.com/anverk/miniblog/models"
)

type UserStorage interface {
	// RegisterUser хеширует пароль и создает пользователя.
	// Занятый username — apperr.ErrConflict.
	RegisterUser(username, password string) (*models.UserView, error)
	// AuthenticateUser сверяет пароль. Неизвестный username и неверный
	// пароль неразличимы для вызывающего — apperr.ErrUnauthorized.
	AuthenticateUser(username, password string) (*models.UserView, error)
	GetUserById(id uint) (*models.UserView, error)
}
