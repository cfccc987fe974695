package memory

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/anverk/miniblog/internal/apperr"
	"github.com/anverk/miniblog/models"
)

type UserMemoryStorage struct {
	mu        sync.Mutex
	users     map[string]*models.UserView // по username
	passwords map[string]string
	nextId    uint
}

func NewUserMemoryStorage() *UserMemoryStorage {
	return &UserMemoryStorage{
		users:     make(map[string]*models.UserView),
		passwords: make(map[string]string),
		nextId:    1,
	}
}

func (s *UserMemoryStorage) RegisterUser(username, password string) (*models.UserView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.users[username]
	if exists {
		return nil, fmt.Errorf("user %s already exists: %w", username, apperr.ErrConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.UserView{
		ID:       s.nextId,
		Username: username,
	}
	s.nextId++

	s.users[username] = user
	s.passwords[username] = string(hashedPassword)

	return user, nil
}

func (s *UserMemoryStorage) AuthenticateUser(username, password string) (*models.UserView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Неизвестный username и неверный пароль дают один и тот же ответ —
	// чтобы нельзя было перебором выяснить, какие имена заняты
	user, exists := s.users[username]
	if !exists {
		return nil, fmt.Errorf("invalid username or password: %w", apperr.ErrUnauthorized)
	}

	err := bcrypt.CompareHashAndPassword([]byte(s.passwords[username]), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("invalid username or password: %w", apperr.ErrUnauthorized)
	}

	return user, nil
}

func (s *UserMemoryStorage) GetUserById(id uint) (*models.UserView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, fmt.Errorf("user %d: %w", id, apperr.ErrNotFound)
}
