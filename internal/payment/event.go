package payment

// Status is the closed union of payment event statuses the provider sends.
// Anything outside the named constants is carried through as an
// unrecognized raw string and handled by a single fallback arm.
type Status string

const (
	StatusSuccess    Status = "success"
	StatusFailure    Status = "failure"
	StatusError      Status = "error"
	StatusProcessing Status = "processing"
)

// Recognized reports whether the status maps to a known transition.
func (s Status) Recognized() bool {
	switch s {
	case StatusSuccess, StatusFailure, StatusError, StatusProcessing:
		return true
	}
	return false
}

// Event is a verified payment notification. Immutable once received; a
// given order reference may receive multiple events over time with no
// ordering guarantee from the transport.
type Event struct {
	OrderReference string  `json:"order_id"`
	Status         Status  `json:"status"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	TransactionID  string  `json:"transaction_id"`
	PaymentID      string  `json:"payment_id"`
}
