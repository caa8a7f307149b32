package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/print-storefront/internal/cart"
	"github.com/example/print-storefront/internal/delivery"
	"github.com/example/print-storefront/internal/order"
	"github.com/example/print-storefront/internal/payment"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrMissingRecipient = errors.New("recipient name, phone, email and city are required")
)

// Per-item weight assumed when the client does not supply one. Print
// goods are light; the carrier rounds up anyway.
const defaultItemWeightKg = 0.5

// DefaultCheckoutURL is the provider page the client redirects to with
// the signed payload.
const DefaultCheckoutURL = "https://www.liqpay.ua/api/3/checkout"

// OrderPlacer is the slice of the order service checkout needs.
type OrderPlacer interface {
	Create(ctx context.Context, input order.CreateInput) (*order.Order, error)
}

// Request is the client's checkout submission. Weight is optional and
// estimated from the cart when absent.
type Request struct {
	Recipient     order.Recipient      `json:"recipient"`
	CityRecipient string               `json:"cityRecipient"`
	ServiceType   delivery.ServiceType `json:"serviceType,omitempty"`
	Weight        float64              `json:"weight,omitempty"`
}

// Response carries the created order, its delivery quote and the signed
// provider payload for the payment redirect.
type Response struct {
	Order            *order.Order    `json:"order"`
	Delivery         *delivery.Quote `json:"delivery"`
	PaymentData      string          `json:"paymentData"`
	PaymentSignature string          `json:"paymentSignature"`
	CheckoutURL      string          `json:"checkoutUrl"`
}

// providerPayload is the LiqPay-style pay request.
type providerPayload struct {
	Version     int     `json:"version"`
	PublicKey   string  `json:"public_key"`
	Action      string  `json:"action"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
	OrderID     string  `json:"order_id"`
}

// Service drives the checkout flow: read the cart, quote delivery,
// create the order, clear the cart, hand back the payment redirect
// payload. All heavy lifting is delegated.
type Service struct {
	orders        OrderPlacer
	estimator     delivery.Estimator
	signer        *payment.Verifier
	publicKey     string
	senderCityRef string
	currency      string
	checkoutURL   string
}

func NewService(orders OrderPlacer, estimator delivery.Estimator, signer *payment.Verifier, publicKey, senderCityRef string) *Service {
	return &Service{
		orders:        orders,
		estimator:     estimator,
		signer:        signer,
		publicKey:     publicKey,
		senderCityRef: senderCityRef,
		currency:      "UAH",
		checkoutURL:   DefaultCheckoutURL,
	}
}

// Checkout completes a purchase for the session's cart.
func (s *Service) Checkout(ctx context.Context, store *cart.Store, req Request) (*Response, error) {
	state := store.State()
	if len(state.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if req.Recipient.Name == "" || req.Recipient.Phone == "" || req.Recipient.Email == "" || req.CityRecipient == "" {
		return nil, ErrMissingRecipient
	}

	weight := req.Weight
	if weight <= 0 {
		weight = defaultItemWeightKg * float64(state.TotalItems)
	}

	quote, err := s.estimator.Quote(ctx, delivery.QuoteRequest{
		CitySender:    s.senderCityRef,
		CityRecipient: req.CityRecipient,
		Weight:        weight,
		ServiceType:   req.ServiceType,
		Cost:          state.TotalPrice,
	})
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, len(state.Items))
	for i, line := range state.Items {
		items[i] = order.Item{
			ProductID: line.Product.ProductID,
			Category:  line.Product.Category,
			Name:      line.Name,
			Options:   line.Options,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.LineTotal,
		}
	}

	recipient := req.Recipient
	recipient.CityRef = req.CityRecipient

	o, err := s.orders.Create(ctx, order.CreateInput{
		Items:        items,
		DeliveryCost: quote.TotalCost,
		Currency:     s.currency,
		Recipient:    recipient,
	})
	if err != nil {
		return nil, err
	}

	store.Clear()

	data, signature, err := s.signer.EncodePayload(providerPayload{
		Version:     3,
		PublicKey:   s.publicKey,
		Action:      "pay",
		Amount:      o.Total,
		Currency:    o.Currency,
		Description: fmt.Sprintf("Order %s", o.Reference),
		OrderID:     o.Reference,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Order:            o,
		Delivery:         quote,
		PaymentData:      data,
		PaymentSignature: signature,
		CheckoutURL:      s.checkoutURL,
	}, nil
}
