package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale and SaleLine are bookkeeping rows kept in the schema for the
// point-of-sale screens; no appointment rule depends on them.
type Sale struct {
	ID uint `gorm:"primaryKey"`

	ClientID  uint  `gorm:"not null;index"`
	ProductID *uint `gorm:"index"`

	Date          time.Time       `gorm:"type:date;not null"`
	Total         decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	PaymentMethod string          `gorm:"size:50;not null;default:'Efectivo'"`
	Quantity      int             `gorm:"not null;default:1"`
	Description   *string         `gorm:"size:500"`
	Status        string          `gorm:"size:20;not null;default:'Completada'"`

	Lines []SaleLine `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}

type SaleLine struct {
	ID uint `gorm:"primaryKey"`

	SaleID    uint            `gorm:"not null;index"`
	ProductID uint            `gorm:"not null;index"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}
