package cart

import (
	"sync"

	entity "admybrand.GO/model/entity/catalog"
)

// Item is a cart line: a product reference and its quantity.
type Item struct {
	Product  entity.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Snapshot is an immutable view of a cart with derived totals.
type Snapshot struct {
	Items     []Item  `json:"items"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

// Cart holds the lines for one session. Lines keep insertion order and
// are unique by product id. Mutations serialize on the cart mutex since
// HTTP handlers run concurrently.
type Cart struct {
	mu    sync.Mutex
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add appends a line or increments an existing one. qty <= 0 counts as 1.
func (c *Cart) Add(product entity.Product, qty int) Snapshot {
	if qty <= 0 {
		qty = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity += qty
			return c.snapshot()
		}
	}
	c.items = append(c.items, Item{Product: product, Quantity: qty})
	return c.snapshot()
}

// Remove deletes a line. Absent id is a no-op.
func (c *Cart) Remove(productID string) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID string) Snapshot {
	kept := c.items[:0]
	for _, it := range c.items {
		if it.Product.ID != productID {
			kept = append(kept, it)
		}
	}
	c.items = kept
	return c.snapshot()
}

// UpdateQuantity sets a line quantity exactly; qty <= 0 removes the line.
// Unknown id is a no-op.
func (c *Cart) UpdateQuantity(productID string, qty int) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	if qty <= 0 {
		return c.removeLocked(productID)
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = qty
			break
		}
	}
	return c.snapshot()
}

// Clear empties the cart.
func (c *Cart) Clear() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	return c.snapshot()
}

// Get returns the current snapshot.
func (c *Cart) Get() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// snapshot recomputes totals from the lines. Caller holds the mutex.
func (c *Cart) snapshot() Snapshot {
	s := Snapshot{Items: make([]Item, len(c.items))}
	copy(s.Items, c.items)
	for _, it := range c.items {
		s.Total += it.Product.Price * float64(it.Quantity)
		s.ItemCount += it.Quantity
	}
	return s
}
