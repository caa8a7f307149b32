package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func carrierServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestCarrierClient_Quote_Success(t *testing.T) {
	var received map[string]any
	server := carrierServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []map[string]any{{
				"AssessedCost":   100.0,
				"Cost":           62.0,
				"CostRedelivery": 0.0,
				"CostPack":       8.0,
				"Zone":           "2",
			}},
		})
	})

	client := NewCarrierClient("test-key", server.URL, time.Second)
	quote, err := client.Quote(context.Background(), validQuoteRequest())

	require.NoError(t, err)
	assert.Equal(t, 100.0, quote.AssessedCost)
	assert.Equal(t, 62.0, quote.DeliveryCost)
	assert.Equal(t, 8.0, quote.PackagingCost)
	assert.Equal(t, 70.0, quote.TotalCost)
	assert.Equal(t, "2", quote.Zone)

	assert.Equal(t, "test-key", received["apiKey"])
	assert.Equal(t, "InternetDocument", received["modelName"])
	assert.Equal(t, "getDocumentPrice", received["calledMethod"])
}

func TestCarrierClient_Quote_CarrierReportedError(t *testing.T) {
	server := carrierServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"errors":  []string{"CitySender is invalid"},
		})
	})

	client := NewCarrierClient("test-key", server.URL, time.Second)
	quote, err := client.Quote(context.Background(), validQuoteRequest())

	assert.Nil(t, quote)
	require.ErrorIs(t, err, ErrCarrier)
	assert.Contains(t, err.Error(), "CitySender is invalid")
}

func TestCarrierClient_Quote_NonOKStatus(t *testing.T) {
	server := carrierServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	client := NewCarrierClient("test-key", server.URL, time.Second)
	_, err := client.Quote(context.Background(), validQuoteRequest())

	require.ErrorIs(t, err, ErrCarrier)
	assert.Contains(t, err.Error(), "502")
}

func TestCarrierClient_Quote_EmptyData(t *testing.T) {
	server := carrierServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []any{}})
	})

	client := NewCarrierClient("test-key", server.URL, time.Second)
	_, err := client.Quote(context.Background(), validQuoteRequest())

	assert.ErrorIs(t, err, ErrCarrier)
}

func TestCarrierClient_Quote_ValidatesBeforeCalling(t *testing.T) {
	called := false
	server := carrierServer(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	client := NewCarrierClient("test-key", server.URL, time.Second)
	req := validQuoteRequest()
	req.CityRecipient = ""
	_, err := client.Quote(context.Background(), req)

	assert.ErrorIs(t, err, ErrMissingParameter)
	assert.False(t, called)
}

func TestCarrierClient_Quote_Timeout(t *testing.T) {
	server := carrierServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})

	client := NewCarrierClient("test-key", server.URL, 20*time.Millisecond)
	_, err := client.Quote(context.Background(), validQuoteRequest())

	assert.ErrorIs(t, err, ErrCarrier)
}

func TestCarrierClient_Track_Success(t *testing.T) {
	var received map[string]any
	server := carrierServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []map[string]any{{
				"Number":                "59000000000000",
				"Status":                "Відправлення у місті отримувача",
				"CitySender":            "Київ",
				"CityRecipient":         "Львів",
				"ScheduledDeliveryDate": "30-08-2026",
			}},
		})
	})

	client := NewCarrierClient("test-key", server.URL, time.Second)
	status, err := client.Track(context.Background(), "59000000000000")

	require.NoError(t, err)
	assert.Equal(t, "59000000000000", status.Number)
	assert.Equal(t, "Відправлення у місті отримувача", status.Status)
	assert.Equal(t, "Львів", status.CityRecipient)

	assert.Equal(t, "TrackingDocument", received["modelName"])
	assert.Equal(t, "getStatusDocuments", received["calledMethod"])
}

func TestCarrierClient_Track_EmptyTTN(t *testing.T) {
	client := NewCarrierClient("test-key", "http://unused", time.Second)

	_, err := client.Track(context.Background(), "")

	assert.ErrorIs(t, err, ErrMissingParameter)
}
