package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Action   string `gorm:"size:50;not null;index" json:"accion"`
	Entity   string `gorm:"size:50;index" json:"entidad"`
	EntityID *uint  `json:"entidadId"`
	Metadata string `gorm:"type:text" json:"metadata"`

	RequestID string `gorm:"size:64" json:"requestId,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"fecha"`
}
