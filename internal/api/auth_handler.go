package api

import (
	"net/http"

	"github.com/anverk/miniblog/models"
)

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	User  *models.UserView `json:"user"`
	Token string           `json:"token"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.users.RegisterUser(req.Username, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	token, err := h.tokens.IssueToken(user.ID, user.Username)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{User: user, Token: token})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.users.AuthenticateUser(req.Username, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	token, err := h.tokens.IssueToken(user.ID, user.Username)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{User: user, Token: token})
}
