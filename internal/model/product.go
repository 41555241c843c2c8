package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item tracked from purchase to sale.
// FinalPrice is derived: PurchasePrice + PurchasePrice * Markup / 100.
// It is recomputed by the catalog service on every persist — no other
// component writes it directly.
type Product struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string          `gorm:"index;not null"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// Markup is a percentage applied on top of the purchase price
	Markup       decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	FinalPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	PurchaseDate time.Time       `gorm:"type:date;not null"`
	// IsSold and SaleDate are mutated only by the sale ledger as a side
	// effect of a successful sale, never by catalog edits.
	IsSold   bool       `gorm:"not null;default:false"`
	SaleDate *time.Time `gorm:"type:date"`
	Quantity int        `gorm:"not null;default:0;check:quantity >= 0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Sales []Sale `gorm:"foreignKey:ProductID"`
}
