package handler

import (
	"errors"
	"net/http"

	"github.com/campus-books-server/internal/application/review"
	"github.com/campus-books-server/internal/domain"
	"github.com/campus-books-server/internal/transport/http/middleware"
)

// ReviewHandler handles review listing and submission.
type ReviewHandler struct {
	svc review.Service
}

func NewReviewHandler(svc review.Service) *ReviewHandler { return &ReviewHandler{svc: svc} }

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Append stores a review written by the caller. If the review is saved but
// the admission flag is not, the response is 207 with partial set.
func (h *ReviewHandler) Append(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}
	var rv domain.Review
	if !decodeValid(w, r, &rv) {
		return
	}
	if !middleware.IsOwner(claims.Email, rv.ReviewerEmail) {
		writeError(w, http.StatusForbidden, msgForbidden)
		return
	}
	res, err := h.svc.Append(r.Context(), pathParam(r, "id"), rv)
	if errors.Is(err, domain.ErrPartialFailure) && res != nil {
		writeJSON(w, http.StatusMultiStatus, ReviewEnvelope{
			College: res.College,
			Partial: true,
			Message: err.Error(),
		})
		return
	}
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ReviewEnvelope{College: res.College, AdmissionUpdated: res.AdmissionUpdated})
}
