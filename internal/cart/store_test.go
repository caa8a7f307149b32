package cart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func canvasLine(quantity int) LineItem {
	return LineItem{
		Product:   ProductRef{Category: "canvas", ProductID: "canvas-print"},
		Options:   map[string]string{"size": "40x60", "edge": "gallery"},
		Quantity:  quantity,
		UnitPrice: 450,
	}
}

// ============================================
// Add Item Tests
// ============================================

func TestStore_AddItem_NewLine(t *testing.T) {
	store := NewStore(nil)

	state := store.AddItem(canvasLine(2))

	require.Len(t, state.Items, 1)
	assert.NotEmpty(t, state.Items[0].ID)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, 900.0, state.Items[0].LineTotal)
	assert.Equal(t, 2, state.TotalItems)
	assert.Equal(t, 900.0, state.TotalPrice)
}

func TestStore_AddItem_MergesIdenticalConfiguration(t *testing.T) {
	store := NewStore(nil)

	store.AddItem(canvasLine(1))
	state := store.AddItem(canvasLine(2))

	require.Len(t, state.Items, 1)
	assert.Equal(t, 3, state.Items[0].Quantity)
	assert.Equal(t, 3, state.TotalItems)
	assert.Equal(t, 1350.0, state.TotalPrice)
}

func TestStore_AddItem_DifferentOptionsStaySeparate(t *testing.T) {
	store := NewStore(nil)

	store.AddItem(canvasLine(1))

	other := canvasLine(1)
	other.Options = map[string]string{"size": "60x90", "edge": "gallery"}
	state := store.AddItem(other)

	require.Len(t, state.Items, 2)
	assert.Equal(t, 2, state.TotalItems)
}

func TestStore_AddItem_OptionOrderIrrelevant(t *testing.T) {
	store := NewStore(nil)

	a := canvasLine(1)
	a.Options = map[string]string{"size": "40x60", "edge": "mirror"}
	b := canvasLine(1)
	b.Options = map[string]string{"edge": "mirror", "size": "40x60"}

	store.AddItem(a)
	state := store.AddItem(b)

	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
}

func TestStore_SnapshotOptionsAreNotAliased(t *testing.T) {
	store := NewStore(nil)
	store.AddItem(canvasLine(1))

	state := store.State()
	state.Items[0].Options["size"] = "100x100"

	fresh := store.State()
	assert.Equal(t, "40x60", fresh.Items[0].Options["size"])
}

func TestStore_AddItem_CallerOptionsAreNotAliased(t *testing.T) {
	store := NewStore(nil)
	line := canvasLine(1)
	store.AddItem(line)

	line.Options["size"] = "100x100"

	state := store.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, "40x60", state.Items[0].Options["size"])
}

// ============================================
// Update Quantity Tests
// ============================================

func TestStore_UpdateQuantity_SetsQuantity(t *testing.T) {
	store := NewStore(nil)
	state := store.AddItem(canvasLine(1))
	id := state.Items[0].ID

	state = store.UpdateQuantity(id, 5)

	require.Len(t, state.Items, 1)
	assert.Equal(t, 5, state.Items[0].Quantity)
	assert.Equal(t, 2250.0, state.Items[0].LineTotal)
	assert.Equal(t, 2250.0, state.TotalPrice)
}

func TestStore_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	store := NewStore(nil)
	state := store.AddItem(canvasLine(3))
	id := state.Items[0].ID

	state = store.UpdateQuantity(id, 0)

	assert.Empty(t, state.Items)
	assert.Equal(t, 0, state.TotalItems)
	assert.Equal(t, 0.0, state.TotalPrice)
}

func TestStore_UpdateQuantity_NegativeClampsToRemoval(t *testing.T) {
	store := NewStore(nil)
	state := store.AddItem(canvasLine(3))
	id := state.Items[0].ID

	state = store.UpdateQuantity(id, -4)

	assert.Empty(t, state.Items)
}

func TestStore_UpdateQuantity_UnknownIDIsNoOp(t *testing.T) {
	store := NewStore(nil)
	store.AddItem(canvasLine(2))

	state := store.UpdateQuantity("missing", 7)

	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
}

// ============================================
// Remove / Clear Tests
// ============================================

func TestStore_RemoveItem(t *testing.T) {
	store := NewStore(nil)
	state := store.AddItem(canvasLine(2))
	id := state.Items[0].ID

	state = store.RemoveItem(id)

	assert.Empty(t, state.Items)
	assert.Equal(t, 0.0, state.TotalPrice)
}

func TestStore_RemoveItem_AbsentIDIsNoOp(t *testing.T) {
	store := NewStore(nil)
	store.AddItem(canvasLine(2))

	state := store.RemoveItem("missing")

	assert.Len(t, state.Items, 1)
}

func TestStore_Clear(t *testing.T) {
	store := NewStore(nil)
	store.AddItem(canvasLine(2))
	other := canvasLine(1)
	other.Options = map[string]string{"size": "60x90"}
	store.AddItem(other)

	state := store.Clear()

	assert.Empty(t, state.Items)
	assert.Equal(t, 0, state.TotalItems)
	assert.Equal(t, 0.0, state.TotalPrice)
}

// ============================================
// Open Flag Tests
// ============================================

func TestStore_ToggleOpen(t *testing.T) {
	store := NewStore(nil)

	state := store.ToggleOpen()
	assert.True(t, state.IsOpen)

	state = store.ToggleOpen()
	assert.False(t, state.IsOpen)
}

func TestStore_OpenFlagNotPersisted(t *testing.T) {
	p := NewMemoryPersistence()
	store := NewStore(p)
	store.AddItem(canvasLine(1))
	store.SetOpen(true)

	raw, err := p.Load()
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "is_open")
	assert.NotContains(t, string(raw), "isOpen")

	reloaded := NewStore(p)
	assert.False(t, reloaded.State().IsOpen)
}

// ============================================
// Persistence Tests
// ============================================

func TestStore_PersistedShape(t *testing.T) {
	p := NewMemoryPersistence()
	store := NewStore(p)
	store.AddItem(canvasLine(2))

	raw, err := p.Load()
	require.NoError(t, err)

	var saved struct {
		Items      []LineItem `json:"items"`
		TotalItems int        `json:"totalItems"`
		TotalPrice float64    `json:"totalPrice"`
	}
	require.NoError(t, json.Unmarshal(raw, &saved))
	assert.Len(t, saved.Items, 1)
	assert.Equal(t, 2, saved.TotalItems)
	assert.Equal(t, 900.0, saved.TotalPrice)
}

func TestStore_RoundTripThroughPersistence(t *testing.T) {
	p := NewMemoryPersistence()
	store := NewStore(p)
	store.AddItem(canvasLine(2))
	other := canvasLine(1)
	other.Options = map[string]string{"size": "60x90"}
	other.UnitPrice = 700
	store.AddItem(other)

	reloaded := NewStore(p)
	state := reloaded.State()

	require.Len(t, state.Items, 2)
	assert.Equal(t, 3, state.TotalItems)
	assert.Equal(t, 1600.0, state.TotalPrice)
}

func TestStore_HydrationCoalescesDuplicateLines(t *testing.T) {
	p := NewMemoryPersistence()

	// Two persisted lines with the same configuration, as an older
	// serialization could have produced.
	first := canvasLine(1)
	first.ID = "a"
	first.LineTotal = 450
	second := canvasLine(2)
	second.ID = "b"
	second.LineTotal = 900
	raw, err := json.Marshal(map[string]any{
		"items":      []LineItem{first, second},
		"totalItems": 3,
		"totalPrice": 1350.0,
	})
	require.NoError(t, err)
	require.NoError(t, p.Save(raw))

	store := NewStore(p)
	state := store.State()

	require.Len(t, state.Items, 1)
	assert.Equal(t, 3, state.Items[0].Quantity)
	assert.Equal(t, 1350.0, state.TotalPrice)
}

func TestStore_CorruptBlobTreatedAsEmptyCart(t *testing.T) {
	p := NewMemoryPersistence()
	require.NoError(t, p.Save([]byte("{not json")))

	store := NewStore(p)

	assert.Empty(t, store.State().Items)

	// The corrupt blob is gone from the adapter.
	raw, err := p.Load()
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestStore_NilPersistenceWorks(t *testing.T) {
	store := NewStore(nil)
	state := store.AddItem(canvasLine(1))
	assert.Len(t, state.Items, 1)
}
