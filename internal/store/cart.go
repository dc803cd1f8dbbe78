package store

import (
	"sync"

	"storefront/internal/catalog"
)

// LineItem is one product's entry in the cart. Title, price and image are
// snapshotted at add time and never re-synced against the catalog.
type LineItem struct {
	ProductID int     `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Cart holds the ordered line item collection, at most one line per product
// id, plus the derived itemCount and total. The derived values are recomputed
// before every mutating call returns, never stored independently.
type Cart struct {
	mu        sync.RWMutex
	items     []LineItem
	itemCount int
	total     float64
}

func NewCart() *Cart {
	return &Cart{}
}

// recompute rebuilds both derived values from the line items. Callers must
// hold the write lock.
func (c *Cart) recompute() {
	count := 0
	total := 0.0
	for _, it := range c.items {
		count += it.Quantity
		total += it.Price * float64(it.Quantity)
	}
	c.itemCount = count
	c.total = total
}

// find returns the index of the line for id, or -1. Callers must hold a lock.
func (c *Cart) find(id int) int {
	for i := range c.items {
		if c.items[i].ProductID == id {
			return i
		}
	}
	return -1
}

// AddItem increments the quantity of an existing line or inserts a new one,
// snapshotting title, price and image from the product. Quantities below one
// count as one.
func (c *Cart) AddItem(p catalog.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.find(p.ID); i >= 0 {
		c.items[i].Quantity += quantity
	} else {
		c.items = append(c.items, LineItem{
			ProductID: p.ID,
			Title:     p.Title,
			Price:     p.Price,
			Image:     p.Image,
			Quantity:  quantity,
		})
	}
	c.recompute()
}

// UpdateQuantity sets the line's quantity to the given value; zero or less
// removes the line entirely. Unknown ids are a no-op. Quantities are not
// clamped against any maximum.
func (c *Cart) UpdateQuantity(id, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.find(id)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	} else {
		c.items[i].Quantity = quantity
	}
	c.recompute()
}

// RemoveItem deletes the line if present; absent ids are a no-op.
func (c *Cart) RemoveItem(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.find(id)
	if i < 0 {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.recompute()
}

// Clear empties the collection and resets both derived values.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.recompute()
}

type CartView struct {
	Items     []LineItem `json:"items"`
	ItemCount int        `json:"item_count"`
	Total     float64    `json:"total"`
}

// View returns a consistent snapshot of the lines and their derived totals.
func (c *Cart) View() CartView {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]LineItem, len(c.items))
	copy(items, c.items)

	return CartView{
		Items:     items,
		ItemCount: c.itemCount,
		Total:     c.total,
	}
}
