package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

const (
	ActionCreate      = "create"
	ActionUpdate      = "update"
	ActionDelete      = "delete"
	ActionConfirm     = "confirm"
	ActionCancel      = "cancel"
	ActionComplete    = "complete"
	ActionAdjustStock = "adjust_stock"
	ActionUploadImage = "upload_image"
)

type Filter struct {
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

func (f Filter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

type Store interface {
	CreateAuditLog(ctx context.Context, entry *models.AuditLog) error
	ListAuditLogs(ctx context.Context, f Filter) ([]models.AuditLog, int64, error)
}

type Logger struct {
	store Store
}

func New(store Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metaJSON,
		RequestID: ev.RequestID,
	}

	return l.store.CreateAuditLog(ctx, &entry)
}

func (l *Logger) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	return l.store.ListAuditLogs(ctx, f)
}
