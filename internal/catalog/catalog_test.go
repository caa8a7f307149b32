package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_ListKeepsRegistrationOrder(t *testing.T) {
	c := Seed()

	products := c.List()

	require.Len(t, products, 5)
	assert.Equal(t, "canvas-print", products[0].ID)
	assert.Equal(t, "packaging-box", products[4].ID)
}

func TestCatalog_AddReplacesExistingProduct(t *testing.T) {
	c := New()
	c.Add(&Product{ID: "p1", BasePrice: 100})
	c.Add(&Product{ID: "p1", BasePrice: 200})

	p, ok := c.Get("p1")
	require.True(t, ok)
	assert.Equal(t, 200.0, p.BasePrice)
	assert.Len(t, c.List(), 1)
}

func TestCatalog_GetUnknownProduct(t *testing.T) {
	c := Seed()

	_, ok := c.Get("mugs")

	assert.False(t, ok)
}

func TestCatalog_BilingualNames(t *testing.T) {
	c := Seed()

	p, ok := c.Get("canvas-print")
	require.True(t, ok)
	assert.NotEmpty(t, p.Name.UK)
	assert.NotEmpty(t, p.Name.RU)
}

func TestText_Display(t *testing.T) {
	tests := []struct {
		name string
		text Text
		want string
	}{
		{"both languages", Text{UK: "Наліпки", RU: "Наклейки"}, "Наліпки / Наклейки"},
		{"identical", Text{UK: "Фотокнига", RU: "Фотокнига"}, "Фотокнига"},
		{"ukrainian only", Text{UK: "Візитівки"}, "Візитівки"},
		{"russian only", Text{RU: "Визитки"}, "Визитки"},
		{"empty", Text{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.text.Display())
		})
	}
}

// ============================================
// Price Calculation Tests
// ============================================

func TestCatalog_PriceFor(t *testing.T) {
	c := Seed()

	tests := []struct {
		name      string
		productID string
		options   map[string]string
		want      float64
	}{
		{
			name:      "canvas base size with explicit edge",
			productID: "canvas-print",
			options:   map[string]string{"size": "30x40", "edge": "gallery"},
			want:      450,
		},
		{
			name:      "canvas larger size and mirror edge",
			productID: "canvas-print",
			options:   map[string]string{"size": "60x90", "edge": "mirror"},
			want:      1050,
		},
		{
			name:      "defaults fill unselected options",
			productID: "canvas-print",
			options:   nil,
			want:      450,
		},
		{
			name:      "business cards with lamination and double sides",
			productID: "business-cards-standard",
			options:   map[string]string{"lamination": "matte", "sides": "double"},
			want:      320,
		},
		{
			name:      "negative price delta",
			productID: "stickers-sheet",
			options:   map[string]string{"material": "paper"},
			want:      90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := c.PriceFor(tt.productID, tt.options, 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, price)
		})
	}
}

func TestCatalog_PriceFor_Errors(t *testing.T) {
	c := Seed()

	tests := []struct {
		name      string
		productID string
		options   map[string]string
		quantity  int
		wantErr   error
	}{
		{"unknown product", "mugs", nil, 1, ErrProductNotFound},
		{"unknown option key", "canvas-print", map[string]string{"frame": "oak"}, 1, ErrUnknownOption},
		{"invalid choice", "canvas-print", map[string]string{"size": "100x200"}, 1, ErrInvalidChoice},
		{"zero quantity", "canvas-print", nil, 0, ErrInvalidQuantity},
		{"negative quantity", "canvas-print", nil, -2, ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.PriceFor(tt.productID, tt.options, tt.quantity)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCatalog_PriceFor_MissingOptionWithoutDefault(t *testing.T) {
	c := New()
	c.Add(&Product{
		ID:        "custom",
		BasePrice: 100,
		Options: []Option{
			{
				Key:     "finish",
				Choices: []Choice{{Value: "matte"}, {Value: "glossy"}},
				// No default: the caller must choose.
			},
		},
	})

	_, err := c.PriceFor("custom", nil, 1)
	assert.ErrorIs(t, err, ErrMissingOption)

	price, err := c.PriceFor("custom", map[string]string{"finish": "matte"}, 1)
	require.NoError(t, err)
	assert.Equal(t, 100.0, price)
}
