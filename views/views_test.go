package views

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iskolardev/pupshop-api/models"
)

func TestNormalizeSection(t *testing.T) {
	assert.Equal(t, SectionCart, NormalizeSection("cart"))
	assert.Equal(t, SectionOrderHistory, NormalizeSection("order_history"))
	assert.Equal(t, SectionHome, NormalizeSection("home"))
	assert.Equal(t, SectionHome, NormalizeSection("homepage"))

	// Unknown names fall back to home by contract.
	assert.Equal(t, SectionHome, NormalizeSection("wishlist"))
	assert.Equal(t, SectionHome, NormalizeSection(""))
}

func TestPesoRendersTwoFractionalDigits(t *testing.T) {
	assert.Equal(t, "₱99.50", Peso(decimal.RequireFromString("99.5")))
	assert.Equal(t, "₱0.00", Peso(decimal.Zero))
	assert.Equal(t, "₱36.00", Peso(decimal.RequireFromString("36")))
}

func TestShopTemplateMarksActiveSection(t *testing.T) {
	page := NewShopPage(SectionCart, []models.Product{
		{ID: 1, Name: "Mug", Price: decimal.RequireFromString("99.50"), ImageURL: "/static/images/pup_logo.png"},
	})

	var buf bytes.Buffer
	require.NoError(t, Templates().ExecuteTemplate(&buf, "shop", page))
	html := buf.String()

	assert.Contains(t, html, `<section id="cart" class="p-4 section active">`)
	assert.Contains(t, html, `<section id="home" class="p-4 section">`)
	assert.Contains(t, html, "₱99.50")
	assert.Contains(t, html, "PUP Shop - Cart")
}

func TestAdminTemplateRendersInventoryAndForm(t *testing.T) {
	page := AdminPage{Products: []models.Product{
		{ID: 7, Name: "Mug", Stock: 10, Price: decimal.RequireFromString("99.50")},
	}}

	var buf bytes.Buffer
	require.NoError(t, Templates().ExecuteTemplate(&buf, "admin", page))
	html := buf.String()

	assert.Contains(t, html, "INVENTORY MANAGEMENT")
	assert.Contains(t, html, `formaction="/add"`)
	assert.Contains(t, html, `formaction="/update"`)
	assert.Contains(t, html, `formaction="/delete"`)
	assert.Contains(t, html, "₱99.50")
	assert.Contains(t, html, "Mug")
}
