package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/anverk/miniblog/internal/auth"
	"github.com/anverk/miniblog/internal/mocks"
)

// Обработчики тестируем через полный router: так проверяются и маршруты,
// и middleware, и коды ответов разом
type testEnv struct {
	router   *mux.Router
	users    *mocks.MockUserStorage
	posts    *mocks.MockPostStorage
	comments *mocks.MockCommentStorage
	tokens   *auth.JWTManager
}

func setupAPI(t *testing.T) *testEnv {
	t.Helper()

	users := mocks.NewMockUserStorage()
	posts := mocks.NewMockPostStorage()
	comments := mocks.NewMockCommentStorage(posts)
	tokens := auth.NewJWTManager("test-secret")

	handler := NewHandler(users, posts, comments, tokens)
	router := NewRouter(handler, tokens, "")

	return &testEnv{
		router:   router,
		users:    users,
		posts:    posts,
		comments: comments,
		tokens:   tokens,
	}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// authToken выпускает валидный токен, минуя регистрацию
func (e *testEnv) authToken(t *testing.T, userID uint, username string) string {
	t.Helper()

	token, err := e.tokens.IssueToken(userID, username)
	require.NoError(t, err)
	return token
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	decodeBody(t, rec, &body)
	return body["error"]
}
