package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/example/print-storefront/internal/cart"
	"github.com/example/print-storefront/internal/catalog"
	"github.com/example/print-storefront/internal/checkout"
	"github.com/example/print-storefront/internal/delivery"
	"github.com/example/print-storefront/internal/order"
	"github.com/example/print-storefront/internal/payment"
	"github.com/google/uuid"
)

// sessionCookie carries the anonymous cart session for browser clients.
const sessionCookie = "session_id"

type Handlers struct {
	catalog   *catalog.Catalog
	carts     *cart.Manager
	checkout  *checkout.Service
	orders    *order.Service
	processor *payment.Processor
	verifier  *payment.Verifier
	estimator delivery.Estimator
	adminAuth *AdminAuthenticator
}

func NewHandlers(
	cat *catalog.Catalog,
	carts *cart.Manager,
	checkoutSvc *checkout.Service,
	orders *order.Service,
	processor *payment.Processor,
	verifier *payment.Verifier,
	estimator delivery.Estimator,
	adminAuth *AdminAuthenticator,
) *Handlers {
	return &Handlers{
		catalog:   cat,
		carts:     carts,
		checkout:  checkoutSvc,
		orders:    orders,
		processor: processor,
		verifier:  verifier,
		estimator: estimator,
		adminAuth: adminAuth,
	}
}

// Product Handlers

func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.List())
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := extractPathParam(r.URL.Path, "/products/")
	product, ok := h.catalog.Get(id)
	if !ok {
		respondError(w, "Product not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// PriceProduct computes the configurator price for a product, its selected
// options and a quantity.
func (h *Handlers) PriceProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string            `json:"productId"`
		Options   map[string]string `json:"options"`
		Quantity  int               `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	unitPrice, err := h.catalog.PriceFor(req.ProductID, req.Options, req.Quantity)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, catalog.ErrProductNotFound) {
			status = http.StatusNotFound
		}
		respondError(w, err.Error(), status)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"productId": req.ProductID,
		"quantity":  req.Quantity,
		"unitPrice": unitPrice,
		"total":     unitPrice * float64(req.Quantity),
	})
}

// Cart Handlers

func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request) {
	store := h.carts.ForSession(sessionID(w, r))
	respondJSON(w, http.StatusOK, store.State())
}

func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	store := h.carts.ForSession(sessionID(w, r))

	var req struct {
		ProductID string            `json:"productId"`
		Options   map[string]string `json:"options"`
		Quantity  int               `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	product, ok := h.catalog.Get(req.ProductID)
	if !ok {
		respondError(w, "Product not found", http.StatusNotFound)
		return
	}

	unitPrice, err := h.catalog.PriceFor(req.ProductID, req.Options, req.Quantity)
	if err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	state := store.AddItem(cart.LineItem{
		Product: cart.ProductRef{
			Category:  string(product.Category),
			ProductID: product.ID,
		},
		Name:      product.Name.Display(),
		Options:   req.Options,
		Quantity:  req.Quantity,
		UnitPrice: unitPrice,
	})

	respondJSON(w, http.StatusOK, state)
}

func (h *Handlers) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	store := h.carts.ForSession(sessionID(w, r))
	id := extractPathParam(r.URL.Path, "/cart/items/")

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	respondJSON(w, http.StatusOK, store.UpdateQuantity(id, req.Quantity))
}

func (h *Handlers) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	store := h.carts.ForSession(sessionID(w, r))
	id := extractPathParam(r.URL.Path, "/cart/items/")
	respondJSON(w, http.StatusOK, store.RemoveItem(id))
}

func (h *Handlers) ClearCart(w http.ResponseWriter, r *http.Request) {
	store := h.carts.ForSession(sessionID(w, r))
	respondJSON(w, http.StatusOK, store.Clear())
}

// Checkout Handler

func (h *Handlers) Checkout(w http.ResponseWriter, r *http.Request) {
	store := h.carts.ForSession(sessionID(w, r))

	var req checkout.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.checkout.Checkout(r.Context(), store, req)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart), errors.Is(err, checkout.ErrMissingRecipient),
			errors.Is(err, delivery.ErrMissingParameter), errors.Is(err, delivery.ErrInvalidParameter):
			respondError(w, err.Error(), http.StatusBadRequest)
		default:
			respondError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	respondJSON(w, http.StatusCreated, resp)
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, message string, status int) {
	respondJSON(w, status, map[string]any{"success": false, "error": message})
}

func extractPathParam(path, prefix string) string {
	return strings.TrimPrefix(path, prefix)
}

// sessionID resolves the cart session: X-Session-ID header first, then the
// session cookie, minting and setting a cookie when neither is present.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if id := r.Header.Get("X-Session-ID"); id != "" {
		return id
	}
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
