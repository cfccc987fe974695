package api

import (
	"net/http"
)

type createCommentRequest struct {
	Text   string `json:"text" validate:"required"`
	PostID uint   `json:"postId" validate:"required"`
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.comments.GetComments(pathID(r, "postId"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, err)
		return
	}

	comment, err := h.comments.CreateComment(r.Context(), req.PostID, req.Text)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}
