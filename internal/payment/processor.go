package payment

import (
	"context"
	"fmt"
	"log"
)

// StatusApplier is the order-service collaborator that owns the actual
// state change. It must deduplicate by (orderReference, status): applying
// an already-applied status returns applied=false and triggers no side
// effects.
type StatusApplier interface {
	ApplyPaymentStatus(ctx context.Context, event Event) (applied bool, err error)
}

// Result reports what processing an event did. Err is set (and Processed
// false) when the collaborator failed; callers decide how to surface it,
// the processor itself never panics or propagates.
type Result struct {
	OrderReference string
	Status         Status
	Processed      bool
	Message        string
	Err            error
}

// Processor turns a verified payment event into an order-state effect.
// It only computes what should happen; deduplication is enforced one
// layer down by the StatusApplier.
type Processor struct {
	orders StatusApplier
}

func NewProcessor(orders StatusApplier) *Processor {
	return &Processor{orders: orders}
}

// Process applies one event. Each event is handled independently; the
// same event delivered twice is a no-op with respect to side effects.
func (p *Processor) Process(ctx context.Context, event Event) Result {
	result := Result{
		OrderReference: event.OrderReference,
		Status:         event.Status,
	}

	if !event.Status.Recognized() {
		log.Printf("[Payment] Unrecognized status %q for order %s, no transition applied",
			event.Status, event.OrderReference)
		result.Message = fmt.Sprintf("unrecognized payment status %q: no transition applied", event.Status)
		return result
	}

	applied, err := p.orders.ApplyPaymentStatus(ctx, event)
	if err != nil {
		log.Printf("[Payment] Failed to apply status %q for order %s: %v",
			event.Status, event.OrderReference, err)
		result.Err = err
		result.Message = fmt.Sprintf("payment event not processed: %v", err)
		return result
	}

	if !applied {
		result.Message = fmt.Sprintf("status %q already applied, no action taken", event.Status)
		return result
	}

	result.Processed = true
	switch event.Status {
	case StatusSuccess:
		result.Message = "order marked paid"
	case StatusFailure, StatusError:
		result.Message = "order marked payment-failed"
	case StatusProcessing:
		result.Message = "order marked payment-processing"
	}
	return result
}
