package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrder_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"pending to paid", StatusPending, StatusPaid, true},
		{"pending to processing", StatusPending, StatusProcessing, true},
		{"pending to payment_failed", StatusPending, StatusPaymentFailed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to shipped", StatusPending, StatusShipped, false},
		{"processing to paid", StatusProcessing, StatusPaid, true},
		{"processing to payment_failed", StatusProcessing, StatusPaymentFailed, true},
		{"payment retry after failure", StatusPaymentFailed, StatusPaid, true},
		{"failure back to processing", StatusPaymentFailed, StatusProcessing, true},
		{"paid to shipped", StatusPaid, StatusShipped, true},
		{"paid to paid", StatusPaid, StatusPaid, false},
		{"paid to processing", StatusPaid, StatusProcessing, false},
		{"shipped to delivered", StatusShipped, StatusDelivered, true},
		{"shipped to cancelled", StatusShipped, StatusCancelled, false},
		{"delivered is terminal", StatusDelivered, StatusShipped, false},
		{"cancelled is terminal", StatusCancelled, StatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Order{Status: tt.from}
			assert.Equal(t, tt.allowed, o.CanTransitionTo(tt.to))
		})
	}
}

func TestOrder_TransitionError(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		wantErr error
	}{
		{"ship unpaid order", StatusPending, StatusShipped, ErrOrderNotPaid},
		{"pay paid order", StatusPaid, StatusPaid, ErrOrderAlreadyPaid},
		{"cancel shipped order", StatusShipped, StatusCancelled, ErrOrderShipped},
		{"anything after cancel", StatusCancelled, StatusPaid, ErrOrderCancelled},
		{"generic invalid transition", StatusDelivered, StatusProcessing, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Order{Status: tt.from}
			assert.ErrorIs(t, o.transitionError(tt.to), tt.wantErr)
		})
	}
}

func TestOrder_HasPaymentStatus(t *testing.T) {
	o := &Order{Payments: []PaymentRecord{{Status: "success"}}}

	assert.True(t, o.HasPaymentStatus("success"))
	assert.False(t, o.HasPaymentStatus("failure"))
}

func TestOrder_LastPayment(t *testing.T) {
	o := &Order{}
	assert.Nil(t, o.LastPayment())

	o.Payments = []PaymentRecord{
		{Status: "processing"},
		{Status: "success"},
	}
	assert.Equal(t, "success", o.LastPayment().Status)
}
