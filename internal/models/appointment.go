package models

import "time"

// Appointment references its client and service by id only; the rows are
// resolved through the gateways when needed.
type Appointment struct {
	ID uint `gorm:"primaryKey"`

	ClientID  uint `gorm:"not null;index:idx_appointments_client_time,priority:1"`
	ServiceID uint `gorm:"not null;index"`

	Date time.Time `gorm:"type:date;not null;index"`
	Time string    `gorm:"size:5;not null;index;index:idx_appointments_client_time,priority:2"`

	Status string `gorm:"size:20;not null;default:'Pendiente';index"`

	Notes        string  `gorm:"size:500"`
	Observations *string `gorm:"size:500"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartsAt combines the calendar date and the HH:MM time of day in loc.
func (a Appointment) StartsAt(loc *time.Location) time.Time {
	y, m, d := a.Date.Date()
	hm, err := time.Parse("15:04", a.Time)
	if err != nil {
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	}
	return time.Date(y, m, d, hm.Hour(), hm.Minute(), 0, 0, loc)
}
