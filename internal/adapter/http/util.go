package adapthttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"printcraft/internal/app"
	"printcraft/internal/domain"
)

const maxJSONBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

// writeDomainError maps a store or service error onto a status code.
func writeDomainError(w http.ResponseWriter, err error) {
	var cfgErr *domain.ConfigurationError
	switch {
	case errors.As(err, &cfgErr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":   err.Error(),
			"axis":    cfgErr.Axis,
			"value":   cfgErr.Value,
			"product": cfgErr.Product,
		})
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, app.ErrArtworkNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, domain.ErrInvalidLineItem),
		errors.Is(err, domain.ErrInvalidShipping),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, app.ErrUnsupportedArtwork):
		writeError(w, http.StatusUnprocessableEntity, err)
	case errors.Is(err, domain.ErrCartFull):
		writeError(w, http.StatusConflict, err)
	case errors.Is(err, domain.ErrCredentialRejected):
		writeError(w, http.StatusUnauthorized, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

func parseJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}
