package delivery

import (
	"context"
	"errors"
	"fmt"
)

// ServiceType enumerates the carrier's delivery service kinds.
type ServiceType string

const (
	WarehouseWarehouse ServiceType = "WarehouseWarehouse"
	WarehouseDoors     ServiceType = "WarehouseDoors"
	DoorsWarehouse     ServiceType = "DoorsWarehouse"
	DoorsDoors         ServiceType = "DoorsDoors"
)

// DefaultCargoType matches the carrier's parcel cargo kind.
const DefaultCargoType = "Parcel"

var (
	ErrMissingParameter = errors.New("missing required parameter")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrCarrier          = errors.New("carrier request failed")
)

// Valid reports whether the service type is one of the carrier's kinds.
func (t ServiceType) Valid() bool {
	switch t {
	case WarehouseWarehouse, WarehouseDoors, DoorsWarehouse, DoorsDoors:
		return true
	}
	return false
}

// ToDoor reports whether the service includes courier door delivery.
func (t ServiceType) ToDoor() bool {
	return t == WarehouseDoors || t == DoorsDoors
}

// QuoteRequest carries the inputs of a delivery cost calculation.
// CitySender, CityRecipient, Weight and Cost are required; the rest
// default via ApplyDefaults.
type QuoteRequest struct {
	CitySender    string      `json:"citySender"`
	CityRecipient string      `json:"cityRecipient"`
	Weight        float64     `json:"weight"`
	ServiceType   ServiceType `json:"serviceType,omitempty"`
	Cost          float64     `json:"cost"`
	CargoType     string      `json:"cargoType,omitempty"`
	SeatsAmount   int         `json:"seatsAmount,omitempty"`
}

// ApplyDefaults fills the optional fields.
func (r *QuoteRequest) ApplyDefaults() {
	if r.ServiceType == "" {
		r.ServiceType = WarehouseWarehouse
	}
	if r.CargoType == "" {
		r.CargoType = DefaultCargoType
	}
	if r.SeatsAmount <= 0 {
		r.SeatsAmount = 1
	}
}

// Validate checks the required inputs. It does not mutate the request;
// callers normally ApplyDefaults after a successful validation.
func (r *QuoteRequest) Validate() error {
	if r.CitySender == "" {
		return fmt.Errorf("%w: citySender", ErrMissingParameter)
	}
	if r.CityRecipient == "" {
		return fmt.Errorf("%w: cityRecipient", ErrMissingParameter)
	}
	if r.Weight == 0 {
		return fmt.Errorf("%w: weight", ErrMissingParameter)
	}
	if r.Weight < 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidParameter)
	}
	if r.Cost == 0 {
		return fmt.Errorf("%w: cost", ErrMissingParameter)
	}
	if r.Cost < 0 {
		return fmt.Errorf("%w: cost must be positive", ErrInvalidParameter)
	}
	if r.ServiceType != "" && !r.ServiceType.Valid() {
		return fmt.Errorf("%w: serviceType %q", ErrInvalidParameter, r.ServiceType)
	}
	return nil
}

// Quote is a computed shipping cost estimate. TotalCost is always
// DeliveryCost + PackagingCost.
type Quote struct {
	AssessedCost   float64 `json:"assessedCost"`
	DeliveryCost   float64 `json:"deliveryCost"`
	RedeliveryCost float64 `json:"redeliveryCost"`
	PackagingCost  float64 `json:"packagingCost"`
	Zone           string  `json:"zone"`
	TotalCost      float64 `json:"totalCost"`
}

// TrackingStatus is the state of a parcel as reported by the carrier.
type TrackingStatus struct {
	Number        string `json:"number"`
	Status        string `json:"status"`
	CitySender    string `json:"citySender,omitempty"`
	CityRecipient string `json:"cityRecipient,omitempty"`
	ScheduledDate string `json:"scheduledDeliveryDate,omitempty"`
}

// Estimator produces shipping quotes and tracks parcels. Implementations:
// the carrier HTTP adapter and the deterministic fallback. Selection is
// driven by configuration, never by call sites.
type Estimator interface {
	Quote(ctx context.Context, req QuoteRequest) (*Quote, error)
	Track(ctx context.Context, ttn string) (*TrackingStatus, error)
}
