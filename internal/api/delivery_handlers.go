package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/example/print-storefront/internal/delivery"
)

// CalculateDelivery quotes the shipping cost for a parcel. Validation
// failures return 400 with no partial calculation; carrier failures return
// 500 carrying the upstream message.
func (h *Handlers) CalculateDelivery(w http.ResponseWriter, r *http.Request) {
	var req delivery.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	quote, err := h.estimator.Quote(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingParameter), errors.Is(err, delivery.ErrInvalidParameter):
			respondError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, delivery.ErrCarrier):
			respondError(w, err.Error(), http.StatusInternalServerError)
		default:
			respondError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	req.ApplyDefaults()
	respondJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"calculation": quote,
		"parameters":  req,
	})
}

// TrackParcel looks up a parcel by its carrier tracking number.
func (h *Handlers) TrackParcel(w http.ResponseWriter, r *http.Request) {
	ttn := r.URL.Query().Get("ttn")
	if ttn == "" {
		respondError(w, "ttn is required", http.StatusBadRequest)
		return
	}

	status, err := h.estimator.Track(r.Context(), ttn)
	if err != nil {
		respondError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"tracking": status,
	})
}
