package handler

import (
	"net/http"

	"github.com/campus-books-server/internal/application/admission"
	"github.com/campus-books-server/internal/domain"
	"github.com/campus-books-server/internal/transport/http/middleware"
)

// AdmissionHandler handles the student-scoped admission endpoints.
type AdmissionHandler struct {
	svc admission.Service
}

func NewAdmissionHandler(svc admission.Service) *AdmissionHandler {
	return &AdmissionHandler{svc: svc}
}

// Submit requires the body's student_email to be the caller's own.
func (h *AdmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}
	var req domain.CreateAdmissionRequest
	if !decodeValid(w, r, &req) {
		return
	}
	if !middleware.IsOwner(claims.Email, req.StudentEmail) {
		writeError(w, http.StatusForbidden, msgForbidden)
		return
	}
	a, err := h.svc.Submit(r.Context(), req)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *AdmissionHandler) ListByStudent(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListByStudent(r.Context(), pathParam(r, "email"))
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
