package postgres

import (
	"fmt"

	"github.com/jinzhu/gorm"
	"golang.org/x/crypto/bcrypt"

	"github.com/anverk/miniblog/internal/apperr"
	"github.com/anverk/miniblog/models"
)

type UserPostgresStorage struct {
	db *gorm.DB
}

func NewUserPostgresStorage(db *gorm.DB) *UserPostgresStorage {
	return &UserPostgresStorage{db: db}
}

func (s *UserPostgresStorage) RegisterUser(username, password string) (*models.UserView, error) {
	// проверка - существует ли такой пользователь
	var existUser models.User
	err := s.db.Where("username = ?", username).First(&existUser).Error
	if err == nil {
		return nil, fmt.Errorf("user with username %s already exists: %w", username, apperr.ErrConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hashedPassword),
	}

	err = s.db.Create(user).Error
	if err != nil {
		// Гонка двух одновременных регистраций: одна из них упрется
		// в уникальный индекс — это CONFLICT, а не внутренняя ошибка
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("user with username %s already exists: %w", username, apperr.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &models.UserView{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

func (s *UserPostgresStorage) AuthenticateUser(username, password string) (*models.UserView, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		// Не раскрываем, существует ли такой пользователь
		return nil, fmt.Errorf("invalid username or password: %w", apperr.ErrUnauthorized)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("invalid username or password: %w", apperr.ErrUnauthorized)
	}

	return &models.UserView{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

func (s *UserPostgresStorage) GetUserById(id uint) (*models.UserView, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, fmt.Errorf("user %d: %w", id, apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("could not get user by id: %w", err)
	}

	return &models.UserView{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}
