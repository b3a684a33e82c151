package handler

import (
	"net/http"

	"github.com/campus-books-server/internal/application/auth"
	"github.com/campus-books-server/internal/domain"
)

// AuthHandler issues bearer tokens.
type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req domain.TokenRequest
	if !decodeValid(w, r, &req) {
		return
	}
	token, err := h.svc.IssueToken(r.Context(), req)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, TokenEnvelope{Token: token})
}
