package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a catalog entry ("servicio") that appointments book.
type Service struct {
	ID uint `gorm:"primaryKey"`

	Name            string          `gorm:"size:100;not null;uniqueIndex:idx_services_name"`
	Description     string          `gorm:"size:500;not null"`
	Price           decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	DurationMinutes int             `gorm:"not null"`
	Category        string          `gorm:"size:50;not null;index"`
	Active          bool            `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
