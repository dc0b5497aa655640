package memory

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

type AuditRepository struct {
	s *Store
}

func (r *AuditRepository) CreateAuditLog(_ context.Context, entry *models.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entry.ID = r.s.next("audit_logs")
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.s.now()
	}
	r.s.auditLogs = append(r.s.auditLogs, *entry)
	return nil
}

func (r *AuditRepository) ListAuditLogs(_ context.Context, f audit.Filter) ([]models.AuditLog, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var matched []models.AuditLog
	for _, e := range r.s.auditLogs {
		switch {
		case f.Action != "" && e.Action != f.Action:
			continue
		case f.Entity != "" && e.Entity != f.Entity:
			continue
		case f.From != nil && e.CreatedAt.Before(*f.From):
			continue
		case f.To != nil && !e.CreatedAt.Before(*f.To):
			continue
		}
		matched = append(matched, e)
	}

	sort.SliceStable(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	start := f.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := len(matched)
	if f.Limit > 0 && start+f.Limit < end {
		end = start + f.Limit
	}
	return matched[start:end], total, nil
}

var _ audit.Store = (*AuditRepository)(nil)
