// Package views owns page composition for both surfaces. There is exactly
// one shop page builder, parameterized by the active section and the product
// list, and one admin page builder.
package views

import (
	"html/template"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iskolardev/pupshop-api/models"
)

// Section is one named logical view within the shop UI.
type Section string

const (
	SectionHome         Section = "home"
	SectionRegister     Section = "register"
	SectionLogin        Section = "login"
	SectionCart         Section = "cart"
	SectionCheckout     Section = "checkout"
	SectionProfile      Section = "profile"
	SectionOrderHistory Section = "order_history"
	SectionContact      Section = "contact"
)

var validSections = map[Section]bool{
	SectionHome:         true,
	SectionRegister:     true,
	SectionLogin:        true,
	SectionCart:         true,
	SectionCheckout:     true,
	SectionProfile:      true,
	SectionOrderHistory: true,
	SectionContact:      true,
}

// NormalizeSection maps a requested section name onto the enumerated set.
// Unknown names fall back to home; this is a contract, not an accident.
// "homepage" is accepted as a legacy alias for home.
func NormalizeSection(name string) Section {
	if name == "homepage" {
		return SectionHome
	}
	s := Section(name)
	if validSections[s] {
		return s
	}
	return SectionHome
}

// Peso renders a money value with the fixed currency prefix and exactly two
// fractional digits.
func Peso(d decimal.Decimal) string {
	return "₱" + d.StringFixed(2)
}

// OrderRow is one hard-coded order history entry. Orders are display-only;
// nothing persists them.
type OrderRow struct {
	Ref     string
	Status  string
	Items   int
	Payment string
}

var OrderHistory = []OrderRow{
	{Ref: "PUPSHP-001", Status: "Delivered", Items: 2, Payment: "₱356.00"},
	{Ref: "PUPSHP-002", Status: "Shipped", Items: 1, Payment: "₱140.00"},
}

// ShopPage is the data for one full shop document. Every section is rendered
// into the document; only Active is visible.
type ShopPage struct {
	Title    string
	Active   Section
	Products []models.Product
	Orders   []OrderRow
	Notice   string
}

// NewShopPage assembles the page data for a section.
func NewShopPage(active Section, products []models.Product) ShopPage {
	return ShopPage{
		Title:    "PUP Shop - " + sectionTitle(active),
		Active:   active,
		Products: products,
		Orders:   OrderHistory,
	}
}

func sectionTitle(s Section) string {
	words := strings.Split(string(s), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// SectionClass returns the css classes for a section container.
func (p ShopPage) SectionClass(name string) string {
	if string(p.Active) == name {
		return "section active"
	}
	return "section"
}

// NavClass returns the css classes for a bottom-nav button.
func (p ShopPage) NavClass(name string) string {
	if string(p.Active) == name {
		return "bottom-nav-item active"
	}
	return "bottom-nav-item inactive"
}

// AdminPage is the data for the inventory panel.
type AdminPage struct {
	Products []models.Product
}

// Templates parses both page templates; the result is handed to each gin
// engine via SetHTMLTemplate.
func Templates() *template.Template {
	t := template.New("").Funcs(template.FuncMap{
		"peso":  Peso,
		"fixed": func(d decimal.Decimal) string { return d.StringFixed(2) },
	})
	template.Must(t.New("shop").Parse(shopTmpl))
	template.Must(t.New("admin").Parse(adminTmpl))
	return t
}
