package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is an immutable record of one product sale. Rows are created only
// through the sale ledger's guarded operation and are never updated or
// deleted — the referenced product is protected instead (RESTRICT).
type Sale struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	SaleDate  time.Time       `gorm:"type:date;not null"`
	SalePrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}
