package models

import "time"

type Client struct {
	ID uint `gorm:"primaryKey"`

	FirstName string  `gorm:"size:50;not null"`
	LastName  string  `gorm:"size:50;not null"`
	Phone     string  `gorm:"size:10;not null"`
	Email     string  `gorm:"size:100;not null;uniqueIndex:idx_clients_email"`
	Address   *string `gorm:"size:200"`

	BirthDate    time.Time `gorm:"type:date;not null"`
	RegisteredAt time.Time `gorm:"not null"`

	UpdatedAt time.Time
}
