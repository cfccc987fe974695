package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite" // Импортируем драйвер SQLite
	"github.com/stretchr/testify/require"

	"github.com/anverk/miniblog/internal/auth"
	"github.com/anverk/miniblog/models"
)

// Создает контекст с identity пользователя
func createUserContext(userID uint, username string) context.Context {
	ctx := context.Background()
	return auth.WithIdentity(ctx, auth.Identity{UserID: userID, Username: username})
}

// setupTestDB создает тестовую БД в памяти и выполняет миграции
func setupTestDB(t *testing.T) *gorm.DB {
	// Создаем SQLite в памяти
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err, "Failed to connect to in-memory SQLite")

	// Одно соединение, иначе каждый коннект пула получит свою пустую базу
	db.DB().SetMaxOpenConns(1)
	// Включаем foreign keys в SQLite
	db.Exec("PRAGMA foreign_keys = ON")
	// Отключаем логирование запросов для тестов
	db.LogMode(false)
	// Выполняем миграцию схемы базы данных
	err = db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}).Error
	require.NoError(t, err, "Failed to migrate database schema")

	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	return db
}

// createTestUser создает тестового пользователя и возвращает его ID
func createTestUser(t *testing.T, db *gorm.DB, username string) uint {
	user := &models.User{
		Username: username,
		Password: "irrelevant-hash",
	}

	err := db.Create(user).Error
	require.NoError(t, err, "Failed to create test user")

	return user.ID
}

// createTestPost создает тестовый пост и возвращает его ID
func createTestPost(t *testing.T, db *gorm.DB, userID uint, title, body string) uint {
	post := &models.Post{
		Title:  title,
		Body:   body,
		UserID: userID,
	}

	err := db.Create(post).Error
	require.NoError(t, err, "Failed to create test post")

	return post.ID
}

// createTestPostAt создает пост с заданным временем создания (для проверки tie-break)
func createTestPostAt(t *testing.T, db *gorm.DB, userID uint, title, body string, createdAt time.Time) uint {
	post := &models.Post{
		Title:  title,
		Body:   body,
		UserID: userID,
	}
	post.CreatedAt = createdAt

	err := db.Create(post).Error
	require.NoError(t, err, "Failed to create test post")

	return post.ID
}
