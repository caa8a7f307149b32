package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/example/print-storefront/internal/money"
)

// Category identifies a family of configurable print products.
type Category string

const (
	CategoryCanvas        Category = "canvas"
	CategoryAcrylic       Category = "acrylic"
	CategoryBusinessCards Category = "business-cards"
	CategoryStickers      Category = "stickers"
	CategoryPackaging     Category = "packaging"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrUnknownOption   = errors.New("unknown option")
	ErrInvalidChoice   = errors.New("invalid option choice")
	ErrMissingOption   = errors.New("missing required option")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Text holds the Ukrainian and Russian variants of a customer-facing string.
type Text struct {
	UK string `json:"uk"`
	RU string `json:"ru"`
}

// Display renders both languages for contexts without a locale, such as
// order lines and notification emails.
func (t Text) Display() string {
	switch {
	case t.RU == "" || t.RU == t.UK:
		return t.UK
	case t.UK == "":
		return t.RU
	default:
		return t.UK + " / " + t.RU
	}
}

// Choice is one selectable value of an option, with its price delta in UAH.
type Choice struct {
	Value      string  `json:"value"`
	Label      Text    `json:"label"`
	PriceDelta float64 `json:"price_delta"`
}

// Option is one configurator dimension of a product (size, lamination, ...).
type Option struct {
	Key     string   `json:"key"`
	Label   Text     `json:"label"`
	Choices []Choice `json:"choices"`
	Default string   `json:"default"`
}

// Product is a configurable print product.
type Product struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Name        Text     `json:"name"`
	Description Text     `json:"description"`
	BasePrice   float64  `json:"base_price"`
	Options     []Option `json:"options"`
}

// Catalog is an in-memory product catalog. Reads dominate; products are
// registered once at startup.
type Catalog struct {
	mu       sync.RWMutex
	products map[string]*Product
	order    []string
}

func New() *Catalog {
	return &Catalog{products: make(map[string]*Product)}
}

// Add registers a product, replacing any previous product with the same ID.
func (c *Catalog) Add(p *Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.products[p.ID]; !exists {
		c.order = append(c.order, p.ID)
	}
	c.products[p.ID] = p
}

// Get returns a product by ID.
func (c *Catalog) Get(id string) (*Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.products[id]
	return p, ok
}

// List returns all products in registration order.
func (c *Catalog) List() []*Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Product, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.products[id])
	}
	return out
}

// PriceFor computes the unit price for a configured product. Every option
// of the product must be resolved either by the caller's selection or by
// the option's default; unknown option keys and unknown choice values are
// rejected.
func (c *Catalog) PriceFor(productID string, options map[string]string, quantity int) (float64, error) {
	if quantity <= 0 {
		return 0, ErrInvalidQuantity
	}

	p, ok := c.Get(productID)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}

	known := make(map[string]*Option, len(p.Options))
	for i := range p.Options {
		known[p.Options[i].Key] = &p.Options[i]
	}
	for key := range options {
		if _, ok := known[key]; !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownOption, key)
		}
	}

	unit := p.BasePrice
	for i := range p.Options {
		opt := &p.Options[i]
		value, selected := options[opt.Key]
		if !selected {
			value = opt.Default
		}
		if value == "" {
			return 0, fmt.Errorf("%w: %s", ErrMissingOption, opt.Key)
		}

		found := false
		for _, choice := range opt.Choices {
			if choice.Value == value {
				unit += choice.PriceDelta
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %s=%s", ErrInvalidChoice, opt.Key, value)
		}
	}

	return money.Round2(unit), nil
}
