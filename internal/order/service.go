package order

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/example/print-storefront/internal/money"
	"github.com/example/print-storefront/internal/payment"
	"github.com/google/uuid"
)

// Publisher delivers domain events downstream (Kafka in production).
// A nil publisher disables publication.
type Publisher interface {
	Publish(ctx context.Context, key, eventType string, data any) error
}

// Service owns order creation and state transitions. It implements the
// payment.StatusApplier contract: payment statuses are deduplicated by
// (reference, status) so webhook redeliveries trigger no duplicate
// notifications.
type Service struct {
	store     Store
	publisher Publisher
}

func NewService(store Store, publisher Publisher) *Service {
	return &Service{store: store, publisher: publisher}
}

// CreateInput is everything needed to place an order.
type CreateInput struct {
	Items        []Item
	DeliveryCost float64
	Currency     string
	Recipient    Recipient
}

// NewReference generates a short customer-facing order reference.
func NewReference() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "PS-" + strings.ToUpper(id[:12])
}

// Create places a new pending order and publishes OrderPlaced.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	now := time.Now()

	var subtotal float64
	for _, item := range input.Items {
		subtotal += item.LineTotal
	}
	subtotal = money.Round2(subtotal)

	o := &Order{
		Reference:    NewReference(),
		Items:        input.Items,
		Subtotal:     subtotal,
		DeliveryCost: money.Round2(input.DeliveryCost),
		Total:        money.Round2(subtotal + input.DeliveryCost),
		Currency:     input.Currency,
		Status:       StatusPending,
		Recipient:    input.Recipient,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.Save(ctx, o); err != nil {
		return nil, err
	}

	s.publish(ctx, o.Reference, EventOrderPlaced, OrderPlaced{
		Reference:    o.Reference,
		Items:        o.Items,
		Subtotal:     o.Subtotal,
		DeliveryCost: o.DeliveryCost,
		Total:        o.Total,
		Currency:     o.Currency,
		Email:        o.Recipient.Email,
		PlacedAt:     now,
	})

	return o, nil
}

// Get returns an order by reference.
func (s *Service) Get(ctx context.Context, reference string) (*Order, error) {
	return s.store.Get(ctx, reference)
}

// List returns all orders, newest first.
func (s *Service) List(ctx context.Context) ([]*Order, error) {
	return s.store.List(ctx)
}

// paymentTarget maps a payment status to the order status it implies.
func paymentTarget(status payment.Status) Status {
	switch status {
	case payment.StatusSuccess:
		return StatusPaid
	case payment.StatusFailure, payment.StatusError:
		return StatusPaymentFailed
	case payment.StatusProcessing:
		return StatusProcessing
	}
	return ""
}

// ApplyPaymentStatus applies a verified payment event to the order.
// An already-applied (reference, status) pair is a no-op returning
// applied=false; so is an event made stale by an already-final state
// (e.g. processing arriving after success) since the transport gives no
// ordering guarantee. Only a newly applied status publishes an event.
func (s *Service) ApplyPaymentStatus(ctx context.Context, event payment.Event) (bool, error) {
	o, err := s.store.Get(ctx, event.OrderReference)
	if err != nil {
		return false, err
	}

	if o.HasPaymentStatus(string(event.Status)) {
		return false, nil
	}

	record := PaymentRecord{
		Status:        string(event.Status),
		Amount:        event.Amount,
		Currency:      event.Currency,
		TransactionID: event.TransactionID,
		PaymentID:     event.PaymentID,
		ReceivedAt:    time.Now(),
	}

	target := paymentTarget(event.Status)
	if !o.CanTransitionTo(target) {
		// Stale or out-of-order delivery: record it, change nothing.
		log.Printf("[Order] Ignoring stale payment status %q for order %s (status %s)",
			event.Status, o.Reference, o.Status)
		o.Payments = append(o.Payments, record)
		o.UpdatedAt = time.Now()
		if err := s.store.Save(ctx, o); err != nil {
			return false, err
		}
		return false, nil
	}

	o.Status = target
	o.Payments = append(o.Payments, record)
	o.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, o); err != nil {
		return false, err
	}

	switch target {
	case StatusPaid:
		s.publish(ctx, o.Reference, EventOrderPaid, OrderPaid{
			Reference:     o.Reference,
			Amount:        event.Amount,
			Currency:      event.Currency,
			TransactionID: event.TransactionID,
			Email:         o.Recipient.Email,
			PaidAt:        record.ReceivedAt,
		})
	case StatusPaymentFailed:
		s.publish(ctx, o.Reference, EventOrderPaymentFailed, OrderPaymentFailed{
			Reference: o.Reference,
			Reason:    string(event.Status),
			Email:     o.Recipient.Email,
			FailedAt:  record.ReceivedAt,
		})
	case StatusProcessing:
		s.publish(ctx, o.Reference, EventOrderPaymentProcessing, OrderPaymentProcessing{
			Reference: o.Reference,
			Email:     o.Recipient.Email,
			At:        record.ReceivedAt,
		})
	}

	return true, nil
}

// Ship marks a paid order shipped with its carrier tracking reference.
func (s *Service) Ship(ctx context.Context, reference, trackingRef string) (*Order, error) {
	o, err := s.store.Get(ctx, reference)
	if err != nil {
		return nil, err
	}

	if !o.CanTransitionTo(StatusShipped) {
		return nil, o.transitionError(StatusShipped)
	}

	now := time.Now()
	o.Status = StatusShipped
	o.TrackingRef = trackingRef
	o.UpdatedAt = now
	if err := s.store.Save(ctx, o); err != nil {
		return nil, err
	}

	s.publish(ctx, o.Reference, EventOrderShipped, OrderShipped{
		Reference:   o.Reference,
		TrackingRef: trackingRef,
		Email:       o.Recipient.Email,
		ShippedAt:   now,
	})

	return o, nil
}

// PaymentState is the payment view of an order for the status endpoint.
type PaymentState struct {
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	TransactionID string  `json:"transactionId"`
	PaymentID     string  `json:"paymentId"`
	IsPaid        bool    `json:"isPaid"`
	IsFailed      bool    `json:"isFailed"`
	IsProcessing  bool    `json:"isProcessing"`
}

// PaymentState reports the latest payment state of an order.
func (s *Service) PaymentState(ctx context.Context, reference string) (*PaymentState, error) {
	o, err := s.store.Get(ctx, reference)
	if err != nil {
		return nil, err
	}

	state := &PaymentState{
		Status:       "none",
		Currency:     o.Currency,
		IsPaid:       o.Status == StatusPaid || o.Status == StatusShipped || o.Status == StatusDelivered,
		IsFailed:     o.Status == StatusPaymentFailed,
		IsProcessing: o.Status == StatusProcessing,
	}
	if last := o.LastPayment(); last != nil {
		state.Status = last.Status
		state.Amount = last.Amount
		state.Currency = last.Currency
		state.TransactionID = last.TransactionID
		state.PaymentID = last.PaymentID
	}
	return state, nil
}

// publish sends a domain event if a publisher is configured. Publication
// failures are logged; the state change has already been persisted.
func (s *Service) publish(ctx context.Context, key, eventType string, data any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, key, eventType, data); err != nil {
		log.Printf("[Order] Failed to publish %s for order %s: %v", eventType, key, err)
	}
}
