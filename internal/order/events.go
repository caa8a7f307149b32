package order

import "time"

const (
	EventOrderPlaced            = "OrderPlaced"
	EventOrderPaid              = "OrderPaid"
	EventOrderPaymentFailed     = "OrderPaymentFailed"
	EventOrderPaymentProcessing = "OrderPaymentProcessing"
	EventOrderShipped           = "OrderShipped"
)

type OrderPlaced struct {
	Reference    string    `json:"reference"`
	Items        []Item    `json:"items"`
	Subtotal     float64   `json:"subtotal"`
	DeliveryCost float64   `json:"delivery_cost"`
	Total        float64   `json:"total"`
	Currency     string    `json:"currency"`
	Email        string    `json:"email"`
	PlacedAt     time.Time `json:"placed_at"`
}

type OrderPaid struct {
	Reference     string    `json:"reference"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	TransactionID string    `json:"transaction_id"`
	Email         string    `json:"email"`
	PaidAt        time.Time `json:"paid_at"`
}

type OrderPaymentFailed struct {
	Reference string    `json:"reference"`
	Reason    string    `json:"reason"`
	Email     string    `json:"email"`
	FailedAt  time.Time `json:"failed_at"`
}

type OrderPaymentProcessing struct {
	Reference string    `json:"reference"`
	Email     string    `json:"email"`
	At        time.Time `json:"at"`
}

type OrderShipped struct {
	Reference   string    `json:"reference"`
	TrackingRef string    `json:"tracking_ref"`
	Email       string    `json:"email"`
	ShippedAt   time.Time `json:"shipped_at"`
}
