package handler

import (
	"net/http"

	"github.com/campus-books-server/internal/application/catalog"
)

// CatalogHandler serves graduates and research.
type CatalogHandler struct {
	svc catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler { return &CatalogHandler{svc: svc} }

func (h *CatalogHandler) Graduates(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Graduates(r.Context())
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *CatalogHandler) Research(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Research(r.Context())
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
