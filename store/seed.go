package store

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/iskolardev/pupshop-api/models"
)

var sampleProducts = []models.Product{
	{Name: "PUP Minimalist Baybayin Lanyard", Description: "Coquette Style Baybayin Lanyard", Price: decimal.RequireFromString("140.00"), Stock: 100, ImageURL: "/static/images/product_lanyard.png", SoldCount: 50},
	{Name: "PUP Jeepney Signage", Description: "Collectible Iskolar Script Signage", Price: decimal.RequireFromString("20.00"), Stock: 200, ImageURL: "/static/images/product_jeepney.png", SoldCount: 112},
	{Name: "PUP Iskolar TOTE BAG (White)", Description: "White Tote Bag with Iskolar Script", Price: decimal.RequireFromString("160.00"), Stock: 75, ImageURL: "/static/images/product_tote1.png", SoldCount: 45},
	{Name: "PUP Iskolar TOTE BAG (Black)", Description: "Black Tote Bag with Iskolar Script", Price: decimal.RequireFromString("160.00"), Stock: 75, ImageURL: "/static/images/product_tote2.png", SoldCount: 30},
	{Name: "PUP STUDY WITH STYLE Shirt", Description: "PUP Obelisk silhouette design shirt", Price: decimal.RequireFromString("450.00"), Stock: 50, ImageURL: "/static/images/product_shirt.png", SoldCount: 88},
}

// Seed populates the sample catalog, but only when the products table is
// still empty.
func (s *Store) Seed() error {
	var count int64
	if err := s.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	if count > 0 {
		return nil
	}
	log.Println("✅ Populating sample products...")
	products := make([]models.Product, len(sampleProducts))
	copy(products, sampleProducts)
	if err := s.db.Create(&products).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	return nil
}
