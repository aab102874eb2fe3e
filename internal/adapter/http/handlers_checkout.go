package adapthttp

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"printcraft/internal/domain"
)

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var ship domain.ShippingDetails
	if err := parseJSON(w, r, &ship); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	order, err := s.checkout.PlaceOrder(r.Context(), ship)
	if r.Context().Err() != nil {
		// Client is gone; the order completes in the background.
		return
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"orderId": order.ID, "order": order})
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := s.checkout.Order(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("order not found"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"order": order})
}
