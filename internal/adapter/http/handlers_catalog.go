package adapthttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"printcraft/internal/app"
	"printcraft/internal/domain"
)

type configurationRequest struct {
	Selections       map[string]string `json:"selections"`
	Quantity         int               `json:"quantity"`
	PreviewText      []string          `json:"previewText"`
	ArtworkReference string            `json:"artworkReference"`
}

func (c configurationRequest) configuration() domain.Configuration {
	return domain.Configuration{
		Selections:       c.Selections,
		Quantity:         c.Quantity,
		PreviewText:      c.PreviewText,
		ArtworkReference: c.ArtworkReference,
	}
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.Products(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": products})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.Product(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"product": p, "defaults": p.Default()})
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.Product(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	var body configurationRequest
	if err := parseJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	item, err := app.Quote(p, body.configuration())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"priceCents": item.UnitPrice, "item": item})
}
