package store

import (
	"testing"

	"storefront/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int, price float64) catalog.Product {
	return catalog.Product{
		ID:       id,
		Title:    "product",
		Price:    price,
		Category: "electronics",
		Image:    "https://example.com/p.jpg",
	}
}

func TestCartTotalsTrackMutations(t *testing.T) {
	cart := NewCart()

	cart.AddItem(product(1, 10), 2)
	view := cart.View()
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.ItemCount)
	assert.Equal(t, 20.0, view.Total)

	cart.AddItem(product(1, 10), 1)
	view = cart.View()
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
	assert.Equal(t, 3, view.ItemCount)
	assert.Equal(t, 30.0, view.Total)

	cart.UpdateQuantity(1, 0)
	view = cart.View()
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.ItemCount)
	assert.Equal(t, 0.0, view.Total)
}

func TestCartDerivedTotalsAlwaysConsistent(t *testing.T) {
	cart := NewCart()

	cart.AddItem(product(1, 9.99), 3)
	cart.AddItem(product(2, 109.95), 1)
	cart.AddItem(product(3, 22.3), 2)
	cart.UpdateQuantity(2, 4)
	cart.RemoveItem(3)

	view := cart.View()
	wantCount := 0
	wantTotal := 0.0
	for _, it := range view.Items {
		wantCount += it.Quantity
		wantTotal += it.Price * float64(it.Quantity)
	}
	assert.Equal(t, wantCount, view.ItemCount)
	assert.InDelta(t, wantTotal, view.Total, 1e-9)
}

func TestUpdateQuantityZeroMatchesRemove(t *testing.T) {
	updated := NewCart()
	removed := NewCart()
	for _, c := range []*Cart{updated, removed} {
		c.AddItem(product(1, 10), 2)
		c.AddItem(product(2, 5), 1)
	}

	updated.UpdateQuantity(1, 0)
	removed.RemoveItem(1)

	assert.Equal(t, removed.View(), updated.View())
}

func TestAddThenRemoveRoundTrip(t *testing.T) {
	cart := NewCart()
	before := cart.View()

	cart.AddItem(product(1, 10), 1)
	cart.RemoveItem(1)

	assert.Equal(t, before, cart.View())
}

func TestRemoveUnknownItemIsNoOp(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product(1, 10), 1)

	cart.RemoveItem(42)
	cart.UpdateQuantity(42, 5)

	view := cart.View()
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.ItemCount)
	assert.Equal(t, 10.0, view.Total)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	cart := NewCart()

	cart.AddItem(product(1, 10), 0)

	view := cart.View()
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity)
}

func TestAddItemSnapshotsProductFields(t *testing.T) {
	cart := NewCart()

	p := catalog.Product{ID: 7, Title: "backpack", Price: 109.95, Image: "https://example.com/b.jpg"}
	cart.AddItem(p, 1)

	// Mutating the caller's product must not reach the snapshot.
	p.Price = 1
	p.Title = "changed"

	view := cart.View()
	require.Len(t, view.Items, 1)
	assert.Equal(t, "backpack", view.Items[0].Title)
	assert.Equal(t, 109.95, view.Items[0].Price)
	assert.Equal(t, 109.95, view.Total)
}

func TestClearCart(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product(1, 10), 2)
	cart.AddItem(product(2, 5), 3)

	cart.Clear()

	view := cart.View()
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.ItemCount)
	assert.Equal(t, 0.0, view.Total)
}

func TestQuantityNotClamped(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product(1, 2), 1)

	cart.UpdateQuantity(1, 100000)

	view := cart.View()
	assert.Equal(t, 100000, view.ItemCount)
	assert.Equal(t, 200000.0, view.Total)
}
