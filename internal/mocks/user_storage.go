package mocks

import (
	"fmt"
	"sync"

	"github.com/anverk/miniblog/internal/apperr"
	"github.com/anverk/miniblog/models"
)

// MockUserStorage — упрощенное хранилище для тестов обработчиков.
// Пароли хранит открытым текстом (bcrypt в тестах не нужен).
type MockUserStorage struct {
	mu        sync.Mutex
	users     map[string]*models.UserView
	passwords map[string]string
	nextID    uint

	// Err, если задана, возвращается из любой операции — для проверки
	// ветки internal server error
	Err error
}

func NewMockUserStorage() *MockUserStorage {
	return &MockUserStorage{
		users:     make(map[string]*models.UserView),
		passwords: make(map[string]string),
		nextID:    1,
	}
}

func (m *MockUserStorage) RegisterUser(username, password string) (*models.UserView, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[username]; exists {
		return nil, fmt.Errorf("user %s already exists: %w", username, apperr.ErrConflict)
	}

	user := &models.UserView{
		ID:       m.nextID,
		Username: username,
	}
	m.nextID++

	m.users[username] = user
	m.passwords[username] = password

	return user, nil
}

func (m *MockUserStorage) AuthenticateUser(username, password string) (*models.UserView, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, exists := m.users[username]
	if !exists || m.passwords[username] != password {
		return nil, fmt.Errorf("invalid username or password: %w", apperr.ErrUnauthorized)
	}

	return user, nil
}

func (m *MockUserStorage) GetUserById(id uint) (*models.UserView, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, fmt.Errorf("user %d: %w", id, apperr.ErrNotFound)
}
