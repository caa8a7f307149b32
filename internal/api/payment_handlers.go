package api

import (
	"errors"
	"net/http"

	"github.com/example/print-storefront/internal/order"
	"github.com/example/print-storefront/internal/payment"
)

// PaymentWebhook receives the provider's form-encoded server callback.
// The signature is checked before anything else is decoded; a mismatch is
// rejected with 403 and no processing.
func (h *Handlers) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	data := r.PostFormValue("data")
	signature := r.PostFormValue("signature")
	if data == "" || signature == "" {
		respondError(w, "data and signature are required", http.StatusBadRequest)
		return
	}

	event, err := h.verifier.DecodeEvent(data, signature)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrBadSignature):
			respondError(w, err.Error(), http.StatusForbidden)
		case errors.Is(err, payment.ErrMalformedPayload):
			respondError(w, err.Error(), http.StatusBadRequest)
		default:
			respondError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	result := h.processor.Process(r.Context(), *event)
	if result.Err != nil {
		status := http.StatusInternalServerError
		if errors.Is(result.Err, order.ErrOrderNotFound) {
			status = http.StatusNotFound
		}
		respondJSON(w, status, map[string]any{
			"success":   false,
			"orderId":   result.OrderReference,
			"status":    result.Status,
			"processed": false,
			"message":   result.Message,
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"orderId":   result.OrderReference,
		"status":    result.Status,
		"processed": result.Processed,
		"message":   result.Message,
	})
}

// PaymentStatus reports the latest payment state of an order.
func (h *Handlers) PaymentStatus(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("orderId")
	if orderID == "" {
		respondError(w, "orderId is required", http.StatusBadRequest)
		return
	}

	state, err := h.orders.PaymentState(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			respondError(w, "Order not found", http.StatusNotFound)
			return
		}
		respondError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"orderId": orderID,
		"payment": state,
	})
}
