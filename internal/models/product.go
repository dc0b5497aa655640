package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const DefaultMinStock = 5

type Product struct {
	ID uint `gorm:"primaryKey"`

	Name        string          `gorm:"size:100;not null"`
	Description *string         `gorm:"size:500"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	MinStock    int             `gorm:"not null;default:5"`
	Brand       *string         `gorm:"size:50"`
	Category    *string         `gorm:"size:50;index"`
	Active      bool            `gorm:"not null;default:true"`
	ImageURL    *string         `gorm:"size:500"`

	RegisteredAt time.Time `gorm:"not null"`
	UpdatedAt    time.Time
}

func (p Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
