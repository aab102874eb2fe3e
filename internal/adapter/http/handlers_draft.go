package adapthttp

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"printcraft/internal/app"
	"printcraft/internal/domain"
)

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	d, err := s.drafts.Get(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"draft": d})
}

// handleUpdateDraft answers a rejected change with 422 and the draft as it
// stands, so the page can roll its controls back.
func (s *Server) handleUpdateDraft(w http.ResponseWriter, r *http.Request) {
	var body app.DraftChange
	if err := parseJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	d, err := s.drafts.Apply(r.Context(), chi.URLParam(r, "slug"), body)
	var cfgErr *domain.ConfigurationError
	switch {
	case errors.As(err, &cfgErr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error": err.Error(),
			"axis":  cfgErr.Axis,
			"value": cfgErr.Value,
			"draft": d,
		})
	case err != nil:
		writeDomainError(w, err)
	default:
		writeJSON(w, http.StatusOK, map[string]any{"draft": d})
	}
}

func (s *Server) handleResetDraft(w http.ResponseWriter, r *http.Request) {
	d, err := s.drafts.Reset(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"draft": d})
}

func (s *Server) handleAddDraftToCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	newItem, err := s.drafts.LineItem(ctx, chi.URLParam(r, "slug"))
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
