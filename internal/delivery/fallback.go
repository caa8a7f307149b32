package delivery

import (
	"context"
	"fmt"

	"github.com/example/print-storefront/internal/money"
)

// Fallback tariff constants, in UAH.
const (
	fallbackBaseCost      = 45.0
	fallbackPerKgOverBase = 5.0
	fallbackBaseWeightKg  = 2.0
	fallbackDoorSurcharge = 20.0
	fallbackPackagingCost = 5.0
)

// FallbackEstimator computes quotes with a fixed tariff so the system is
// testable and demoable without carrier credentials. Pure: same input,
// same output.
type FallbackEstimator struct{}

func NewFallbackEstimator() *FallbackEstimator {
	return &FallbackEstimator{}
}

// Quote applies the fallback formula:
// 45 + max(0, weight-2)×5 + 20 for door delivery, plus a 5 UAH packaging
// surcharge.
func (e *FallbackEstimator) Quote(_ context.Context, req QuoteRequest) (*Quote, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.ApplyDefaults()

	cost := fallbackBaseCost
	if req.Weight > fallbackBaseWeightKg {
		cost += (req.Weight - fallbackBaseWeightKg) * fallbackPerKgOverBase
	}
	if req.ServiceType.ToDoor() {
		cost += fallbackDoorSurcharge
	}

	zone := "Intercity"
	if req.CitySender == req.CityRecipient {
		zone = "Local"
	}

	quote := &Quote{
		AssessedCost:   money.Round2(req.Cost),
		DeliveryCost:   money.Round2(cost),
		RedeliveryCost: 0,
		PackagingCost:  fallbackPackagingCost,
		Zone:           zone,
	}
	quote.TotalCost = money.Round2(quote.DeliveryCost + quote.PackagingCost)
	return quote, nil
}

// Track returns a synthetic in-transit record keyed on the document number.
func (e *FallbackEstimator) Track(_ context.Context, ttn string) (*TrackingStatus, error) {
	if ttn == "" {
		return nil, fmt.Errorf("%w: ttn", ErrMissingParameter)
	}
	return &TrackingStatus{
		Number: ttn,
		Status: "InTransit",
	}, nil
}
