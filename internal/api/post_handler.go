package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/anverk/miniblog/models"
)

const (
	defaultPage  = 1
	defaultLimit = 5
)

type createPostRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

type postListResponse struct {
	Data       []*models.PostView `json:"data"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Total      int                `json:"total"`
	TotalPages int                `json:"totalPages"`
}

// queryInt читает числовой query-параметр; нечисловое или
// неположительное значение заменяется на def
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return def
	}
	return value
}

func pathID(r *http.Request, name string) uint {
	// Маршрут допускает только [0-9]+, поэтому ошибка здесь невозможна
	value, _ := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	return uint(value)
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", defaultPage)
	limit := queryInt(r, "limit", defaultLimit)

	items, total, err := h.posts.ListPosts(page, limit)
	if err != nil {
		respondError(w, err)
		return
	}

	totalPages := (total + limit - 1) / limit

	writeJSON(w, http.StatusOK, postListResponse{
		Data:       items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	})
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.GetPostById(pathID(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, err)
		return
	}

	post, err := h.posts.CreatePost(r.Context(), req.Title, req.Body)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}
