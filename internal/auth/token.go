package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/anverk/miniblog/internal/apperr"
)

// Время жизни токена. Ревокации нет — истечение единственный способ инвалидации.
const tokenTTL = 7 * 24 * time.Hour

// JWTManager подписывает и проверяет токены сессии.
// Секрет передается явно при создании (не через глобальное состояние).
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		ttl:    tokenTTL,
	}
}

func (m *JWTManager) IssueToken(userID uint, username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"exp":      time.Now().Add(m.ttl).Unix(),
	})

	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ParseToken проверяет подпись и срок действия токена и возвращает identity.
// Любая проблема с токеном — одна и та же ошибка ErrUnauthorized.
func (m *JWTManager) ParseToken(tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token: %w", apperr.ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fmt.Errorf("invalid token claims: %w", apperr.ErrUnauthorized)
	}

	idFloat, ok := claims["user_id"].(float64)
	if !ok {
		return Identity{}, fmt.Errorf("invalid token claims: %w", apperr.ErrUnauthorized)
	}

	username, ok := claims["username"].(string)
	if !ok {
		return Identity{}, fmt.Errorf("invalid token claims: %w", apperr.ErrUnauthorized)
	}

	return Identity{UserID: uint(idFloat), Username: username}, nil
}
