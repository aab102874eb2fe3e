package adapthttp

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"printcraft/internal/app"
)

func (s *Server) writeCart(w http.ResponseWriter, status int) {
	snap := s.cart.Snapshot()
	writeJSON(w, status, map[string]any{
		"items":    snap.Items,
		"subtotal": snap.Subtotal(),
		"count":    snap.Count(),
	})
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	s.writeCart(w, http.StatusOK)
}

// handleAddItem prices the configuration server-side so the client cannot
// choose its own unit price.
func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductSlug string `json:"productSlug"`
		configurationRequest
	}
	if err := parseJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if body.ProductSlug == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("productSlug is required"))
		return
	}

	ctx := r.Context()
	p, err := s.catalog.Product(ctx, body.ProductSlug)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	newItem, err := app.Quote(p, body.configuration())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	item, err := s.cart.Add(ctx, newItem)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"item": item})
}

func (s *Server) handleSetQuantity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := parseJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.cart.SetQuantity(r.Context(), chi.URLParam(r, "id"), body.Quantity); err != nil {
		writeDomainError(w, err)
		return
	}
	s.writeCart(w, http.StatusOK)
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	if err := s.cart.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearCart(w http.ResponseWriter, r *http.Request) {
	if err := s.cart.Clear(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
