// Package storefront is the client side of the restaurant storefront: the
// cart, the client-held session, the catalog filter and the API client.
package storefront

import (
	"github.com/shopspring/decimal"
)

// DefaultEmoji is shown for cart items added without one.
const DefaultEmoji = "📦"

// CartItem is one cart line. The JSON shape is the one persisted under the
// "carrito" key and sent as order items.
type CartItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Emoji    string          `json:"emoji"`
}

// Subtotal returns price times quantity.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart holds cart lines in insertion order. Ids are unique.
type Cart struct {
	Items []CartItem
}

// Add increments the quantity of an existing id, or appends a new line with
// quantity 1 when price parses as a decimal. It reports whether the cart changed.
func (c *Cart) Add(id, name, price, emoji string) bool {
	if i := c.index(id); i >= 0 {
		c.Items[i].Quantity++
		return true
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		return false
	}
	if emoji == "" {
		emoji = DefaultEmoji
	}
	c.Items = append(c.Items, CartItem{ID: id, Name: name, Price: p, Quantity: 1, Emoji: emoji})
	return true
}

// Increase adds one unit of id.
func (c *Cart) Increase(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.Items[i].Quantity++
	return true
}

// Decrease removes one unit of id; the line is dropped when it reaches zero.
func (c *Cart) Decrease(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	if c.Items[i].Quantity > 1 {
		c.Items[i].Quantity--
		return true
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return true
}

// Remove drops the line of id.
func (c *Cart) Remove(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return true
}

// Total is the sum of all line subtotals.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Count is the number of units in the cart, shown on the cart badge.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Empty() bool { return len(c.Items) == 0 }

func (c *Cart) Clear() { c.Items = nil }

func (c *Cart) index(id string) int {
	for i, it := range c.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
