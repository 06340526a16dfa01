package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices and totals render as JSON numbers for the register front end.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a sellable item in the store.
type Product struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	Name       string          `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock      int             `json:"stock" gorm:"not null;default:0;check:stock >= 0"`
	CategoryID uint            `json:"category_id" gorm:"index;not null"`
	Category   *Category       `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ProductView is a product joined with its category name, as listed on the
// inventory screen.
type ProductView struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	CategoryID   uint            `json:"category_id"`
	CategoryName string          `json:"category"`
}
