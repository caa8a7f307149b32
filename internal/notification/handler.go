package notification

import (
	"context"
	"encoding/json"
	"log"

	"github.com/example/print-storefront/internal/email"
	"github.com/example/print-storefront/internal/events"
	"github.com/example/print-storefront/internal/order"
)

// Handler processes order events for sending notifications
type Handler struct {
	emailService *email.Service
}

// NewHandler creates a new notification handler
func NewHandler(emailSvc *email.Service) *Handler {
	return &Handler{emailService: emailSvc}
}

// HandleEvent processes an event from Kafka
func (h *Handler) HandleEvent(ctx context.Context, key, value []byte) error {
	var envelope events.Envelope
	if err := json.Unmarshal(value, &envelope); err != nil {
		log.Printf("[Notifier] Failed to unmarshal event: %v", err)
		return err
	}

	switch envelope.EventType {
	case order.EventOrderPlaced:
		return h.handleOrderPlaced(envelope)
	case order.EventOrderPaid:
		return h.handleOrderPaid(envelope)
	case order.EventOrderPaymentProcessing:
		return h.handleOrderPaymentProcessing(envelope)
	case order.EventOrderPaymentFailed:
		return h.handleOrderPaymentFailed(envelope)
	case order.EventOrderShipped:
		return h.handleOrderShipped(envelope)
	}

	return nil
}

func (h *Handler) handleOrderPlaced(envelope events.Envelope) error {
	var e order.OrderPlaced
	if err := json.Unmarshal(envelope.Data, &e); err != nil {
		log.Printf("[Notifier] Failed to unmarshal OrderPlaced event: %v", err)
		return err
	}
	if e.Email == "" {
		log.Printf("[Notifier] OrderPlaced for %s has no recipient email, skipping", e.Reference)
		return nil
	}

	emailItems := make([]email.OrderItem, len(e.Items))
	for i, item := range e.Items {
		name := item.Name
		if name == "" {
			name = item.ProductID
		}
		emailItems[i] = email.OrderItem{
			Name:     name,
			Quantity: item.Quantity,
			Total:    item.LineTotal,
		}
	}

	log.Printf("[Notifier] Sending order confirmation for %s to %s", e.Reference, e.Email)
	if err := h.emailService.SendOrderConfirmation(e.Email, e.Reference, e.Total, e.Currency, emailItems); err != nil {
		log.Printf("[Notifier] Failed to send order confirmation for %s: %v", e.Reference, err)
		return err
	}
	return nil
}

func (h *Handler) handleOrderPaid(envelope events.Envelope) error {
	var e order.OrderPaid
	if err := json.Unmarshal(envelope.Data, &e); err != nil {
		log.Printf("[Notifier] Failed to unmarshal OrderPaid event: %v", err)
		return err
	}
	if e.Email == "" {
		return nil
	}

	log.Printf("[Notifier] Sending payment confirmation for %s to %s", e.Reference, e.Email)
	if err := h.emailService.SendPaymentReceived(e.Email, e.Reference, e.Amount, e.Currency); err != nil {
		log.Printf("[Notifier] Failed to send payment confirmation for %s: %v", e.Reference, err)
		return err
	}
	return nil
}

func (h *Handler) handleOrderPaymentProcessing(envelope events.Envelope) error {
	var e order.OrderPaymentProcessing
	if err := json.Unmarshal(envelope.Data, &e); err != nil {
		log.Printf("[Notifier] Failed to unmarshal OrderPaymentProcessing event: %v", err)
		return err
	}
	if e.Email == "" {
		return nil
	}

	log.Printf("[Notifier] Sending payment processing notice for %s to %s", e.Reference, e.Email)
	if err := h.emailService.SendPaymentProcessing(e.Email, e.Reference); err != nil {
		log.Printf("[Notifier] Failed to send payment processing notice for %s: %v", e.Reference, err)
		return err
	}
	return nil
}

func (h *Handler) handleOrderPaymentFailed(envelope events.Envelope) error {
	var e order.OrderPaymentFailed
	if err := json.Unmarshal(envelope.Data, &e); err != nil {
		log.Printf("[Notifier] Failed to unmarshal OrderPaymentFailed event: %v", err)
		return err
	}
	if e.Email == "" {
		return nil
	}

	log.Printf("[Notifier] Sending payment failure notice for %s to %s", e.Reference, e.Email)
	if err := h.emailService.SendPaymentFailed(e.Email, e.Reference); err != nil {
		log.Printf("[Notifier] Failed to send payment failure notice for %s: %v", e.Reference, err)
		return err
	}
	return nil
}

func (h *Handler) handleOrderShipped(envelope events.Envelope) error {
	var e order.OrderShipped
	if err := json.Unmarshal(envelope.Data, &e); err != nil {
		log.Printf("[Notifier] Failed to unmarshal OrderShipped event: %v", err)
		return err
	}
	if e.Email == "" {
		return nil
	}

	log.Printf("[Notifier] Sending shipment notice for %s to %s", e.Reference, e.Email)
	if err := h.emailService.SendOrderShipped(e.Email, e.Reference, e.TrackingRef); err != nil {
		log.Printf("[Notifier] Failed to send shipment notice for %s: %v", e.Reference, err)
		return err
	}
	return nil
}
