package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/example/print-storefront/internal/money"
)

// CarrierClient estimates delivery cost and tracks parcels through the
// carrier's JSON API (Nova Poshta wire format). Every call carries a
// bounded timeout via the underlying HTTP client.
type CarrierClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewCarrierClient(apiKey, baseURL string, timeout time.Duration) *CarrierClient {
	return &CarrierClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// carrierRequest is the carrier's generic request envelope.
type carrierRequest struct {
	APIKey           string `json:"apiKey"`
	ModelName        string `json:"modelName"`
	CalledMethod     string `json:"calledMethod"`
	MethodProperties any    `json:"methodProperties"`
}

// carrierResponse is the carrier's generic response envelope.
type carrierResponse struct {
	Success bool              `json:"success"`
	Data    []json.RawMessage `json:"data"`
	Errors  []string          `json:"errors"`
}

type documentPriceProperties struct {
	CitySender    string  `json:"CitySender"`
	CityRecipient string  `json:"CityRecipient"`
	Weight        float64 `json:"Weight"`
	ServiceType   string  `json:"ServiceType"`
	Cost          float64 `json:"Cost"`
	CargoType     string  `json:"CargoType"`
	SeatsAmount   int     `json:"SeatsAmount"`
}

type documentPriceData struct {
	AssessedCost   float64 `json:"AssessedCost"`
	Cost           float64 `json:"Cost"`
	CostRedelivery float64 `json:"CostRedelivery"`
	CostPack       float64 `json:"CostPack"`
	Zone           string  `json:"Zone"`
}

type trackingProperties struct {
	Documents []trackingDocument `json:"Documents"`
}

type trackingDocument struct {
	DocumentNumber string `json:"DocumentNumber"`
}

type trackingData struct {
	Number                string `json:"Number"`
	Status                string `json:"Status"`
	CitySender            string `json:"CitySender"`
	CityRecipient         string `json:"CityRecipient"`
	ScheduledDeliveryDate string `json:"ScheduledDeliveryDate"`
}

// Quote delegates to the carrier's document pricing call and maps the
// response into the Quote shape.
func (c *CarrierClient) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.ApplyDefaults()

	var data documentPriceData
	err := c.call(ctx, carrierRequest{
		APIKey:       c.apiKey,
		ModelName:    "InternetDocument",
		CalledMethod: "getDocumentPrice",
		MethodProperties: documentPriceProperties{
			CitySender:    req.CitySender,
			CityRecipient: req.CityRecipient,
			Weight:        req.Weight,
			ServiceType:   string(req.ServiceType),
			Cost:          req.Cost,
			CargoType:     req.CargoType,
			SeatsAmount:   req.SeatsAmount,
		},
	}, &data)
	if err != nil {
		return nil, err
	}

	quote := &Quote{
		AssessedCost:   money.Round2(data.AssessedCost),
		DeliveryCost:   money.Round2(data.Cost),
		RedeliveryCost: money.Round2(data.CostRedelivery),
		PackagingCost:  money.Round2(data.CostPack),
		Zone:           data.Zone,
	}
	quote.TotalCost = money.Round2(quote.DeliveryCost + quote.PackagingCost)
	return quote, nil
}

// Track queries the carrier's tracking endpoint for a single document.
func (c *CarrierClient) Track(ctx context.Context, ttn string) (*TrackingStatus, error) {
	if ttn == "" {
		return nil, fmt.Errorf("%w: ttn", ErrMissingParameter)
	}

	var data trackingData
	err := c.call(ctx, carrierRequest{
		APIKey:       c.apiKey,
		ModelName:    "TrackingDocument",
		CalledMethod: "getStatusDocuments",
		MethodProperties: trackingProperties{
			Documents: []trackingDocument{{DocumentNumber: ttn}},
		},
	}, &data)
	if err != nil {
		return nil, err
	}

	return &TrackingStatus{
		Number:        data.Number,
		Status:        data.Status,
		CitySender:    data.CitySender,
		CityRecipient: data.CityRecipient,
		ScheduledDate: data.ScheduledDeliveryDate,
	}, nil
}

// call posts a request envelope and decodes the first data element into out.
// Transport failures, non-2xx statuses and carrier-reported errors all
// surface as ErrCarrier with the upstream message attached.
func (c *CarrierClient) call(ctx context.Context, req carrierRequest, out any) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCarrier, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCarrier, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCarrier, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected status %d", ErrCarrier, resp.StatusCode)
	}

	var envelope carrierResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%w: %v", ErrCarrier, err)
	}
	if !envelope.Success {
		msg := "unknown carrier error"
		if len(envelope.Errors) > 0 {
			msg = strings.Join(envelope.Errors, "; ")
		}
		return fmt.Errorf("%w: %s", ErrCarrier, msg)
	}
	if len(envelope.Data) == 0 {
		return fmt.Errorf("%w: empty response data", ErrCarrier)
	}
	if err := json.Unmarshal(envelope.Data[0], out); err != nil {
		return fmt.Errorf("%w: %v", ErrCarrier, err)
	}
	return nil
}
