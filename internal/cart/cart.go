package cart

import (
	"math"

	"pharmanature-storefront/internal/models"
)

// Shipping model: orders below the threshold pay a flat fee; at or above it
// shipping is free. Amounts are TND with three fractional digits.
const (
	FreeShippingThreshold = 120.0
	FlatShippingFee       = 7.0
)

// Item is one product line in a cart. UnitPrice, Name and ImageURL are
// snapshotted from the product at add time; later catalog edits do not
// retroactively change a cart.
type Item struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"image_url,omitempty"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// Cart is the in-memory line-item collection for one browsing session.
// Items keep insertion order for display and are unique per product id.
// A cart has exactly one logical owner; callers serialize access to it.
// Derived values are recomputed from current state on every read and
// intentionally never cached.
type Cart struct {
	items []Item
	index map[int]int // product id -> position in items
}

func New() *Cart {
	return &Cart{index: make(map[int]int)}
}

// AddItem adds qty units of the product. If the product is already in the
// cart its quantity is incremented; otherwise a new line is appended with
// the product's current price snapshotted. qty <= 0 is a no-op.
func (c *Cart) AddItem(p *models.Product, qty int) {
	if p == nil || qty <= 0 {
		return
	}
	if pos, ok := c.index[p.ID]; ok {
		c.items[pos].Quantity += qty
		return
	}
	c.index[p.ID] = len(c.items)
	c.items = append(c.items, Item{
		ProductID: p.ID,
		Name:      p.Name,
		ImageURL:  p.ImageURL,
		UnitPrice: p.Price,
		Quantity:  qty,
	})
}

// UpdateQuantity sets the line's quantity. A quantity of zero or below
// removes the line entirely; an unknown product id is a no-op.
func (c *Cart) UpdateQuantity(productID, quantity int) {
	pos, ok := c.index[productID]
	if !ok {
		return
	}
	if quantity <= 0 {
		c.removeAt(pos)
		return
	}
	c.items[pos].Quantity = quantity
}

// RemoveItem deletes the line if present. Removing an absent id is a no-op,
// since the cart cannot distinguish "already removed" from "never existed".
func (c *Cart) RemoveItem(productID int) {
	if pos, ok := c.index[productID]; ok {
		c.removeAt(pos)
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
	c.index = make(map[int]int)
}

func (c *Cart) removeAt(pos int) {
	delete(c.index, c.items[pos].ProductID)
	c.items = append(c.items[:pos], c.items[pos+1:]...)
	for i := pos; i < len(c.items); i++ {
		c.index[c.items[i].ProductID] = i
	}
}

// Items returns the lines in insertion order. The slice is a copy.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// ItemCount is the sum of quantities across all lines.
func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// Subtotal sums price*quantity at full precision. Per-line rounding before
// summation would drift; display rounding belongs to the presentation layer.
func (c *Cart) Subtotal() float64 {
	total := 0.0
	for _, it := range c.items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}

// ShippingProgressPercent is how far the subtotal is toward free shipping,
// capped at 100.
func (c *Cart) ShippingProgressPercent() float64 {
	return math.Min(100, c.Subtotal()/FreeShippingThreshold*100)
}

// RemainingForFreeShipping is the amount still needed to reach the
// free-shipping threshold, never negative.
func (c *Cart) RemainingForFreeShipping() float64 {
	return math.Max(0, FreeShippingThreshold-c.Subtotal())
}

// ShippingFee is zero at or above the threshold, the flat fee below it.
func (c *Cart) ShippingFee() float64 {
	if c.Subtotal() >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

// GrandTotal is subtotal plus shipping fee.
func (c *Cart) GrandTotal() float64 {
	return c.Subtotal() + c.ShippingFee()
}

// Round3 rounds a currency amount to three fractional digits for display.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
