package handler

import (
	"errors"
	"net/http"

	"github.com/campus-books-server/internal/application/college"
	"github.com/campus-books-server/internal/domain"
)

// CollegeHandler handles the public college endpoints.
type CollegeHandler struct {
	svc college.Service
}

func NewCollegeHandler(svc college.Service) *CollegeHandler { return &CollegeHandler{svc: svc} }

func (h *CollegeHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := domain.ParsePageRequest(q.Get("page"), q.Get("limit"))
	if err != nil {
		httpError(w, r, err)
		return
	}
	list, err := h.svc.List(r.Context(), page)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *CollegeHandler) Count(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Count(r.Context())
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CountEnvelope{Total: n})
}

// Get answers 200 with null for an unknown college.
func (h *CollegeHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), pathParam(r, "id"))
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CollegeHandler) Search(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Search(r.Context(), pathParam(r, "name"))
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *CollegeHandler) Popular(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Popular(r.Context())
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
