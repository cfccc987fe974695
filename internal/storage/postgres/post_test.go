package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anverk/miniblog/internal/apperr"
)

func TestPostPostgresStorage_CreatePost(t *testing.T) {
	t.Run("Success post creation", func(t *testing.T) {
		db := setupTestDB(t)
		storage := NewPostPostgresStorage(db)

		userID := createTestUser(t, db, "alice")
		ctx := createUserContext(userID, "alice")

		post, err := storage.CreatePost(ctx, "Test Post Title", "This is a test post body")
		require.NoError(t, err)
		assert.NotZero(t, post.ID)
		assert.Equal(t, "Test Post Title", post.Title)
		assert.Equal(t, "This is a test post body", post.Body)
		assert.Equal(t, userID, post.UserID)
		assert.Equal(t, "alice", post.Author)
		assert.False(t, post.CreatedAt.IsZero())
	})

	t.Run("Title and body are trimmed before persisting", func(t *testing.T) {
		db := setupTestDB(t)
		storage := NewPostPostgresStorage(db)

		userID := createTestUser(t, db, "alice")
		ctx := createUserContext(userID, "alice")

		post, err := storage.CreatePost(ctx, "  T  ", " B \n")
		require.NoError(t, err)
		assert.Equal(t, "T", post.Title)
		assert.Equal(t, "B", post.Body)

		fromDb, err := storage.GetPostById(post.ID)
		require.NoError(t, err)
		assert.Equal(t, "T", fromDb.Title)
		assert.Equal(t, "B", fromDb.Body)
	})

	t.Run("Whitespace-only title is a validation error", func(t *testing.T) {
		db := setupTestDB(t)
		storage := NewPostPostgresStorage(db)

		userID := createTestUser(t, db, "alice")
		ctx := createUserContext(userID, "alice")

		_, err := storage.CreatePost(ctx, "   ", "body")
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("Error: no authorization", func(t *testing.T) {
		db := setupTestDB(t)
		storage := NewPostPostgresStorage(db)

		_, err := storage.CreatePost(context.Background(), "title", "body")
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})
}

func TestPostPostgresStorage_GetPostById(t *testing.T) {
	db := setupTestDB(t)
	storage := NewPostPostgresStorage(db)

	userID := createTestUser(t, db, "alice")
	postID := createTestPost(t, db, userID, "Hello", "World")

	t.Run("Post comes back with author username joined", func(t *testing.T) {
		post, err := storage.GetPostById(postID)
		require.NoError(t, err)
		assert.Equal(t, "Hello", post.Title)
		assert.Equal(t, "World", post.Body)
		assert.Equal(t, "alice", post.Author)
	})

	t.Run("Trying to get not exist post", func(t *testing.T) {
		_, err := storage.GetPostById(99999)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestPostPostgresStorage_ListPosts(t *testing.T) {
	db := setupTestDB(t)
	storage := NewPostPostgresStorage(db)

	userID := createTestUser(t, db, "alice")
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= 7; i++ {
		createTestPostAt(t, db, userID, fmt.Sprintf("post %d", i), "body", base.Add(time.Duration(i)*time.Minute))
	}

	t.Run("First page holds limit items and full total", func(t *testing.T) {
		posts, total, err := storage.ListPosts(1, 5)
		require.NoError(t, err)
		assert.Len(t, posts, 5)
		assert.Equal(t, 7, total)
	})

	t.Run("Second page holds the remainder", func(t *testing.T) {
		posts, total, err := storage.ListPosts(2, 5)
		require.NoError(t, err)
		assert.Len(t, posts, 2)
		assert.Equal(t, 7, total)
	})

	t.Run("Page beyond range is empty, not an error", func(t *testing.T) {
		posts, total, err := storage.ListPosts(5, 5)
		require.NoError(t, err)
		assert.Empty(t, posts)
		assert.Equal(t, 7, total)
	})

	t.Run("Posts are ordered newest first", func(t *testing.T) {
		posts, _, err := storage.ListPosts(1, 7)
		require.NoError(t, err)
		require.Len(t, posts, 7)
		assert.Equal(t, "post 7", posts[0].Title)
		assert.Equal(t, "post 1", posts[6].Title)
	})

	t.Run("Every item carries the author username", func(t *testing.T) {
		posts, _, err := storage.ListPosts(1, 7)
		require.NoError(t, err)
		for _, post := range posts {
			assert.Equal(t, "alice", post.Author)
		}
	})

	t.Run("Equal timestamps are tie-broken by id descending", func(t *testing.T) {
		db := setupTestDB(t)
		storage := NewPostPostgresStorage(db)

		userID := createTestUser(t, db, "bob")
		ts := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
		firstID := createTestPostAt(t, db, userID, "first", "body", ts)
		secondID := createTestPostAt(t, db, userID, "second", "body", ts)

		posts, _, err := storage.ListPosts(1, 5)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, secondID, posts[0].ID)
		assert.Equal(t, firstID, posts[1].ID)
	})
}
