package models

import "github.com/shopspring/decimal"

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock       int             `gorm:"not null" json:"stock"`
	ImageURL    string          `json:"image_url"`
	SoldCount   int             `gorm:"default:0" json:"sold_count"`
}
