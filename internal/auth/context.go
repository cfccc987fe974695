package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/anverk/miniblog/internal/apperr"
)

type contextKey string

const identityKey = contextKey("identity")

// Identity — проверенная личность пользователя из токена.
type Identity struct {
	UserID   uint
	Username string
}

// Сохраняет identity в контексте
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// Достает identity из контекста
func IdentityFromContext(ctx context.Context) (Identity, error) {
	val := ctx.Value(identityKey)
	id, ok := val.(Identity)
	if !ok {
		return Identity{}, fmt.Errorf("identity not found in context: %w", apperr.ErrUnauthorized)
	}
	return id, nil
}

// Middleware извлекает Bearer-токен из заголовка, валидирует его
// и кладет identity в context запроса. Запрос без валидного токена
// пропускается дальше без identity — решение "пускать или нет"
// принимает RequireAuth на защищенных маршрутах.
func Middleware(tokens *JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := extractTokenFromHeader(r.Header.Get("Authorization"))
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := tokens.ParseToken(tokenStr)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractTokenFromHeader(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
