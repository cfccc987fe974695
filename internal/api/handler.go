package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/anverk/miniblog/internal/apperr"
	"github.com/anverk/miniblog/internal/auth"
	"github.com/anverk/miniblog/internal/comment"
	"github.com/anverk/miniblog/internal/post"
	"github.com/anverk/miniblog/internal/user"
)

// Handler связывает HTTP-маршруты с хранилищами.
// Зависимости внедряются при создании — как в Resolver, только для REST.
type Handler struct {
	users    user.UserStorage
	posts    post.PostStorage
	comments comment.CommentStorage
	tokens   *auth.JWTManager
	validate *validator.Validate
}

func NewHandler(users user.UserStorage, posts post.PostStorage, comments comment.CommentStorage, tokens *auth.JWTManager) *Handler {
	v := validator.New()
	// В сообщениях об ошибках используем имена полей из json-тегов
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		users:    users,
		posts:    posts,
		comments: comments,
		tokens:   tokens,
		validate: v,
	}
}

func (h *Handler) decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", apperr.ErrValidation)
	}

	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%s: %w", validationMessage(verrs[0]), apperr.ErrValidation)
		}
		return fmt.Errorf("invalid request body: %w", apperr.ErrValidation)
	}

	return nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
