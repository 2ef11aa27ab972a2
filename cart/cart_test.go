package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleCart() Cart {
	return Cart{
		{ProductID: 1, Name: "PUP Minimalist Baybayin Lanyard", Price: price("140.00"), Quantity: 1, Selected: true},
		{ProductID: 3, Name: "PUP Iskolar TOTE BAG (White)", Price: price("160.00"), Quantity: 2, Selected: true},
		{ProductID: 5, Name: "PUP STUDY WITH STYLE Shirt", Price: price("450.00"), Quantity: 1, Selected: false},
	}
}

func TestSubtotalCountsSelectedLinesOnly(t *testing.T) {
	c := sampleCart()

	assert.Equal(t, "460.00", c.Subtotal().StringFixed(2))
	assert.Equal(t, "496.00", c.Total().StringFixed(2))

	// The deselected shirt stays listed.
	assert.Len(t, c, 3)
}

func TestSubtotalInvariantUnderReordering(t *testing.T) {
	c := sampleCart()
	reversed := Cart{c[2], c[1], c[0]}

	assert.True(t, c.Subtotal().Equal(reversed.Subtotal()))
}

func TestDeleteSelectedEmptiesFullySelectedCart(t *testing.T) {
	c := sampleCart().SelectAll(true)

	c = c.DeleteSelected()

	assert.Empty(t, c)
	assert.Equal(t, "0.00", c.Subtotal().StringFixed(2))
}

func TestDeleteSelectedKeepsDeselectedLines(t *testing.T) {
	c := sampleCart().DeleteSelected()

	require.Len(t, c, 1)
	assert.Equal(t, uint(5), c[0].ProductID)
}

func TestAddBumpsQuantityForExistingProduct(t *testing.T) {
	c := Cart{}.Add(2, "PUP Jeepney Signage", price("20.00"), "/static/images/product_jeepney.png")
	c = c.Add(2, "PUP Jeepney Signage", price("20.00"), "/static/images/product_jeepney.png")

	require.Len(t, c, 1)
	assert.Equal(t, 2, c[0].Quantity)
	assert.True(t, c[0].Selected)
}

func TestQuantityReachingZeroRemovesLine(t *testing.T) {
	c := Cart{{ProductID: 1, Price: price("140.00"), Quantity: 1, Selected: true}}

	c = c.UpdateQuantity(1, -1)

	assert.Empty(t, c)
}

func TestQuantityBelowZeroRemovesLine(t *testing.T) {
	c := Cart{{ProductID: 1, Price: price("140.00"), Quantity: 2, Selected: true}}

	c = c.UpdateQuantity(1, -5)

	assert.Empty(t, c)
}

func TestUpdateQuantityIgnoresUnknownProduct(t *testing.T) {
	c := sampleCart()

	assert.Equal(t, sampleCart(), c.UpdateQuantity(99, 1))
}

func TestSelectAllMatchesCheckboxBothWays(t *testing.T) {
	c := sampleCart().SelectAll(false)
	assert.Equal(t, "0.00", c.Subtotal().StringFixed(2))

	c = c.SelectAll(true)
	assert.Equal(t, "910.00", c.Subtotal().StringFixed(2))
}

func TestToggleSelectionScopesSubtotal(t *testing.T) {
	c := sampleCart().ToggleSelection(3, false)
	assert.Equal(t, "140.00", c.Subtotal().StringFixed(2))

	c = c.ToggleSelection(5, true)
	assert.Equal(t, "590.00", c.Subtotal().StringFixed(2))
}

func TestOperationsDoNotMutateReceiver(t *testing.T) {
	c := sampleCart()

	_ = c.SelectAll(false)
	_ = c.ToggleSelection(1, false)
	_ = c.Add(1, "x", price("1.00"), "")

	assert.Equal(t, sampleCart(), c)
}

func TestBlobRoundTrip(t *testing.T) {
	c := sampleCart()

	blob, err := c.Encode()
	require.NoError(t, err)

	decoded, err := Decode(blob)
	require.NoError(t, err)
	assert.True(t, c.Subtotal().Equal(decoded.Subtotal()))
	assert.Len(t, decoded, 3)
}

func TestDecodeBrowserShapedBlob(t *testing.T) {
	// The browser writes prices as plain JSON numbers.
	blob := []byte(`[{"id":2,"name":"PUP Jeepney Signage","price":20,"image_url":"/static/images/product_jeepney.png","quantity":3,"selected":true}]`)

	c, err := Decode(blob)
	require.NoError(t, err)
	assert.Equal(t, "60.00", c.Subtotal().StringFixed(2))
}

func TestDecodeEmptyBlobIsEmptyCart(t *testing.T) {
	c, err := Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, c)
}
