package handler

import (
	"errors"
	"net/http"

	"github.com/campus-books-server/internal/application/user"
	"github.com/campus-books-server/internal/domain"
)

// UserHandler handles user profile endpoints.
type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler { return &UserHandler{svc: svc} }

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if !decodeValid(w, r, &req) {
		return
	}
	u, err := h.svc.Register(r.Context(), req)
	if errors.Is(err, domain.ErrConflict) {
		writeError(w, http.StatusConflict, "User already exists")
		return
	}
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

// Get answers 200 with null for an unknown user.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Get(r.Context(), pathParam(r, "email"))
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateUserRequest
	if !decodeValid(w, r, &req) {
		return
	}
	u, err := h.svc.Update(r.Context(), pathParam(r, "email"), req)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
