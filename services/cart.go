package services

import "agrodirect/models"

// MaxCartQuantity bounds a single cart entry.
const MaxCartQuantity = 9999

// Cart is the cart manager of one session. It is not safe for concurrent use;
// the owning Session serializes access.
type Cart struct {
	items []models.CartItem
	count int
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Add increments the entry for p, or appends a new entry with quantity 1.
// An entry already at MaxCartQuantity is left unchanged.
func (c *Cart) Add(p models.Product) {
	if i := c.indexOf(p.ID); i >= 0 {
		if c.items[i].CartQuantity >= MaxCartQuantity {
			return
		}
		c.items[i].CartQuantity++
		c.count++
		return
	}
	c.items = append(c.items, models.CartItem{Product: p, CartQuantity: 1})
	c.count++
}

func (c *Cart) Remove(id string) {
	i := c.indexOf(id)
	if i < 0 {
		return
	}
	c.count -= c.items[i].CartQuantity
	c.items = append(c.items[:i], c.items[i+1:]...)
}

// UpdateQuantity sets the quantity of an existing entry, clamped to
// [1, MaxCartQuantity]. Unknown ids are ignored.
func (c *Cart) UpdateQuantity(id string, q int) {
	i := c.indexOf(id)
	if i < 0 {
		return
	}
	if q < 1 {
		q = 1
	}
	if q > MaxCartQuantity {
		q = MaxCartQuantity
	}
	c.count += q - c.items[i].CartQuantity
	c.items[i].CartQuantity = q
}

func (c *Cart) Clear() {
	c.items = nil
	c.count = 0
}

func (c *Cart) ItemCount() int {
	return c.count
}

func (c *Cart) Subtotal() int64 {
	var total int64
	for _, item := range c.items {
		total += item.LineTotal()
	}
	return total
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Items() []models.CartItem {
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}
