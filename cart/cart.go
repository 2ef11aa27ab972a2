// Package cart models the client-held shopping cart. The browser keeps the
// cart as one JSON blob in local storage; this package is the canonical
// definition of that blob and of the pricing rules applied to it. All
// operations are pure and return a new Cart value.
package cart

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// StorageKey is the local-storage key the browser persists the cart under.
const StorageKey = "pup_cart"

// ShippingFee is a flat fee applied unconditionally on every checkout view,
// regardless of item count or weight.
var ShippingFee = decimal.RequireFromString("36.00")

// LineItem is one product entry in the cart. Name, price and image are
// copied from the product at add time and never re-synced if the catalog
// changes afterwards.
type LineItem struct {
	ProductID uint            `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url"`
	Quantity  int             `json:"quantity"`
	Selected  bool            `json:"selected"`
}

// Cart is an ordered sequence of line items.
type Cart []LineItem

// Add appends a new selected line with quantity 1, or bumps the quantity if
// the product is already in the cart.
func (c Cart) Add(productID uint, name string, price decimal.Decimal, imageURL string) Cart {
	out := c.clone()
	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity++
			return out
		}
	}
	return append(out, LineItem{
		ProductID: productID,
		Name:      name,
		Price:     price,
		ImageURL:  imageURL,
		Quantity:  1,
		Selected:  true,
	})
}

// UpdateQuantity adjusts a line's quantity by delta. A line reaching zero or
// below is removed entirely; no zero-quantity lines are retained. Unknown
// product ids are ignored.
func (c Cart) UpdateQuantity(productID uint, delta int) Cart {
	out := make(Cart, 0, len(c))
	for _, item := range c {
		if item.ProductID == productID {
			item.Quantity += delta
			if item.Quantity <= 0 {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

// ToggleSelection sets one line's selection flag.
func (c Cart) ToggleSelection(productID uint, selected bool) Cart {
	out := c.clone()
	for i := range out {
		if out[i].ProductID == productID {
			out[i].Selected = selected
		}
	}
	return out
}

// SelectAll sets every line's selection flag to match the one checkbox.
func (c Cart) SelectAll(selected bool) Cart {
	out := c.clone()
	for i := range out {
		out[i].Selected = selected
	}
	return out
}

// DeleteSelected removes every line currently selected.
func (c Cart) DeleteSelected() Cart {
	out := make(Cart, 0, len(c))
	for _, item := range c {
		if !item.Selected {
			out = append(out, item)
		}
	}
	return out
}

// Subtotal sums price×quantity over selected lines only. Deselected lines
// stay listed but are excluded here.
func (c Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c {
		if item.Selected {
			subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}
	return subtotal
}

// Total is the checkout amount: subtotal plus the flat shipping fee.
func (c Cart) Total() decimal.Decimal {
	return c.Subtotal().Add(ShippingFee)
}

// Encode serializes the cart as the local-storage blob.
func (c Cart) Encode() ([]byte, error) {
	return json.Marshal(c)
}

// Decode parses a local-storage blob. An empty blob is an empty cart.
func Decode(blob []byte) (Cart, error) {
	if len(blob) == 0 {
		return Cart{}, nil
	}
	var c Cart
	if err := json.Unmarshal(blob, &c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c Cart) clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}
