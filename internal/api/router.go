package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/anverk/miniblog/internal/auth"
)

// NewRouter собирает все маршруты приложения.
// staticDir — каталог одностраничного клиента; пустая строка отключает его раздачу.
func NewRouter(h *Handler, tokens *auth.JWTManager, staticDir string) *mux.Router {
	router := mux.NewRouter()

	router.Use(Logger)
	router.Use(Recoverer)
	router.Use(auth.Middleware(tokens))

	router.HandleFunc("/auth/register", h.Register).Methods("POST")
	router.HandleFunc("/auth/login", h.Login).Methods("POST")

	router.HandleFunc("/posts", h.ListPosts).Methods("GET")
	router.HandleFunc("/posts", RequireAuth(h.CreatePost)).Methods("POST")
	router.HandleFunc("/posts/{id:[0-9]+}", h.GetPost).Methods("GET")

	router.HandleFunc("/comments/{postId:[0-9]+}", h.ListComments).Methods("GET")
	router.HandleFunc("/comments", RequireAuth(h.CreateComment)).Methods("POST")

	if staticDir != "" {
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir)))
	}

	return router
}
