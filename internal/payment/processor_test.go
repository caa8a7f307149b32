package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubApplier records calls and replays a scripted response.
type stubApplier struct {
	applied bool
	err     error
	calls   []Event
}

func (s *stubApplier) ApplyPaymentStatus(_ context.Context, event Event) (bool, error) {
	s.calls = append(s.calls, event)
	return s.applied, s.err
}

func successEvent() Event {
	return Event{
		OrderReference: "PS-ABC123",
		Status:         StatusSuccess,
		Amount:         1350,
		Currency:       "UAH",
		TransactionID:  "tx-1",
	}
}

func TestProcessor_Process_SuccessApplied(t *testing.T) {
	applier := &stubApplier{applied: true}
	p := NewProcessor(applier)

	result := p.Process(context.Background(), successEvent())

	assert.True(t, result.Processed)
	assert.NoError(t, result.Err)
	assert.Equal(t, "PS-ABC123", result.OrderReference)
	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, "order marked paid", result.Message)
	require.Len(t, applier.calls, 1)
}

func TestProcessor_Process_FailureStatuses(t *testing.T) {
	for _, status := range []Status{StatusFailure, StatusError} {
		t.Run(string(status), func(t *testing.T) {
			applier := &stubApplier{applied: true}
			p := NewProcessor(applier)

			event := successEvent()
			event.Status = status
			result := p.Process(context.Background(), event)

			assert.True(t, result.Processed)
			assert.Equal(t, "order marked payment-failed", result.Message)
		})
	}
}

func TestProcessor_Process_ProcessingStatus(t *testing.T) {
	applier := &stubApplier{applied: true}
	p := NewProcessor(applier)

	event := successEvent()
	event.Status = StatusProcessing
	result := p.Process(context.Background(), event)

	assert.True(t, result.Processed)
	assert.Equal(t, "order marked payment-processing", result.Message)
}

func TestProcessor_Process_DuplicateIsNoOp(t *testing.T) {
	applier := &stubApplier{applied: false}
	p := NewProcessor(applier)

	result := p.Process(context.Background(), successEvent())

	assert.False(t, result.Processed)
	assert.NoError(t, result.Err)
	assert.Contains(t, result.Message, "already applied")
}

func TestProcessor_Process_UnrecognizedStatusNeverReachesApplier(t *testing.T) {
	applier := &stubApplier{applied: true}
	p := NewProcessor(applier)

	event := successEvent()
	event.Status = "subscribed"
	result := p.Process(context.Background(), event)

	assert.False(t, result.Processed)
	assert.NoError(t, result.Err)
	assert.Contains(t, result.Message, `"subscribed"`)
	assert.Empty(t, applier.calls)
}

func TestProcessor_Process_ApplierErrorReportedNotPanicked(t *testing.T) {
	applier := &stubApplier{err: errors.New("store unavailable")}
	p := NewProcessor(applier)

	result := p.Process(context.Background(), successEvent())

	assert.False(t, result.Processed)
	assert.Error(t, result.Err)
	assert.Contains(t, result.Message, "not processed")
}
