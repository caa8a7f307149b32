package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/example/print-storefront/internal/auth"
	"github.com/example/print-storefront/internal/order"
)

// AdminAuthenticator checks the single configured back-office account and
// issues session tokens. The password only exists as a bcrypt hash.
type AdminAuthenticator struct {
	email        string
	passwordHash string
	jwtService   *auth.JWTService
}

func NewAdminAuthenticator(email, passwordHash string, jwtService *auth.JWTService) *AdminAuthenticator {
	return &AdminAuthenticator{
		email:        email,
		passwordHash: passwordHash,
		jwtService:   jwtService,
	}
}

// ErrInvalidCredentials covers both an unknown email and a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Authenticate verifies the credentials and returns a signed token.
func (a *AdminAuthenticator) Authenticate(email, password string) (string, time.Time, error) {
	if email != a.email || a.passwordHash == "" {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if !auth.CheckPassword(password, a.passwordHash) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	return a.jwtService.GenerateToken(email, "admin")
}

// LoginRequest represents the admin login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLogin handles back-office login
func (h *Handlers) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, expiresAt, err := h.adminAuth.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respondJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"accessToken": token,
		"expiresAt":   expiresAt,
	})
}

// AdminListOrders returns all orders, newest first
func (h *Handlers) AdminListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		respondError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"orders":  orders,
	})
}

// AdminGetOrder returns one order by reference
func (h *Handlers) AdminGetOrder(w http.ResponseWriter, r *http.Request) {
	ref := extractPathParam(r.URL.Path, "/admin/orders/")
	o, err := h.orders.Get(r.Context(), ref)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			respondError(w, "Order not found", http.StatusNotFound)
			return
		}
		respondError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, o)
}

// AdminShipOrder marks a paid order shipped with its tracking number
func (h *Handlers) AdminShipOrder(w http.ResponseWriter, r *http.Request) {
	ref := strings.TrimSuffix(extractPathParam(r.URL.Path, "/admin/orders/"), "/ship")

	var req struct {
		TrackingRef string `json:"trackingRef"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.TrackingRef == "" {
		respondError(w, "trackingRef is required", http.StatusBadRequest)
		return
	}

	o, err := h.orders.Ship(r.Context(), ref, req.TrackingRef)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			respondError(w, "Order not found", http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidStatus), errors.Is(err, order.ErrOrderNotPaid),
			errors.Is(err, order.ErrOrderShipped), errors.Is(err, order.ErrOrderCancelled):
			respondError(w, err.Error(), http.StatusConflict)
		default:
			respondError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	respondJSON(w, http.StatusOK, o)
}
