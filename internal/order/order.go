package order

import (
	"errors"
	"fmt"
	"time"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending       Status = "pending"
	StatusProcessing    Status = "processing"
	StatusPaid          Status = "paid"
	StatusPaymentFailed Status = "payment_failed"
	StatusShipped       Status = "shipped"
	StatusDelivered     Status = "delivered"
	StatusCancelled     Status = "cancelled"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrEmptyOrder       = errors.New("order must have at least one item")
	ErrInvalidStatus    = errors.New("invalid order status transition")
	ErrOrderAlreadyPaid = errors.New("order is already paid")
	ErrOrderNotPaid     = errors.New("order must be paid before shipping")
	ErrOrderShipped     = errors.New("cannot cancel shipped order")
	ErrOrderCancelled   = errors.New("order is already cancelled")
)

// validTransitions defines allowed state transitions. A payment may be
// retried after a failure, so payment_failed is not terminal.
var validTransitions = map[Status][]Status{
	StatusPending:       {StatusProcessing, StatusPaid, StatusPaymentFailed, StatusCancelled},
	StatusProcessing:    {StatusPaid, StatusPaymentFailed, StatusCancelled},
	StatusPaymentFailed: {StatusProcessing, StatusPaid, StatusCancelled},
	StatusPaid:          {StatusShipped, StatusCancelled},
	StatusShipped:       {StatusDelivered},
	StatusDelivered:     {}, // terminal state
	StatusCancelled:     {}, // terminal state
}

// Item is one line of an order, frozen at checkout time.
type Item struct {
	ProductID string            `json:"product_id"`
	Category  string            `json:"category"`
	Name      string            `json:"name"`
	Options   map[string]string `json:"options,omitempty"`
	Quantity  int               `json:"quantity"`
	UnitPrice float64           `json:"unit_price"`
	LineTotal float64           `json:"line_total"`
}

// Recipient is who the parcel is addressed to.
type Recipient struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	CityRef string `json:"city_ref"`
	Address string `json:"address,omitempty"`
}

// PaymentRecord is one payment event applied against the order. The pair
// (order reference, Status) is the deduplication key for webhook
// redeliveries.
type PaymentRecord struct {
	Status        string    `json:"status"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	TransactionID string    `json:"transaction_id"`
	PaymentID     string    `json:"payment_id"`
	ReceivedAt    time.Time `json:"received_at"`
}

// Order is the persisted order record. Reference is the identifier the
// payment provider and customers see.
type Order struct {
	Reference    string          `json:"reference"`
	Items        []Item          `json:"items"`
	Subtotal     float64         `json:"subtotal"`
	DeliveryCost float64         `json:"delivery_cost"`
	Total        float64         `json:"total"`
	Currency     string          `json:"currency"`
	Status       Status          `json:"status"`
	Payments     []PaymentRecord `json:"payments,omitempty"`
	Recipient    Recipient       `json:"recipient"`
	TrackingRef  string          `json:"tracking_ref,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CanTransitionTo checks if the order can transition to the target status.
func (o *Order) CanTransitionTo(target Status) bool {
	allowed, exists := validTransitions[o.Status]
	if !exists {
		return false
	}
	for _, s := range allowed {
		if s == target {
			return true
		}
	}
	return false
}

// transitionError returns an appropriate error for an invalid transition.
func (o *Order) transitionError(target Status) error {
	switch {
	case o.Status == StatusCancelled:
		return ErrOrderCancelled
	case o.Status == StatusShipped && target == StatusCancelled:
		return ErrOrderShipped
	case (o.Status == StatusPaid || o.Status == StatusShipped || o.Status == StatusDelivered) && target == StatusPaid:
		return ErrOrderAlreadyPaid
	case o.Status != StatusPaid && target == StatusShipped:
		return ErrOrderNotPaid
	default:
		return fmt.Errorf("%w: cannot transition from %s to %s", ErrInvalidStatus, o.Status, target)
	}
}

// HasPaymentStatus reports whether a payment status has already been
// applied to this order.
func (o *Order) HasPaymentStatus(status string) bool {
	for _, record := range o.Payments {
		if record.Status == status {
			return true
		}
	}
	return false
}

// LastPayment returns the most recently applied payment record, or nil.
func (o *Order) LastPayment() *PaymentRecord {
	if len(o.Payments) == 0 {
		return nil
	}
	return &o.Payments[len(o.Payments)-1]
}
