package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

// ChangeStatus runs one guarded status shortcut: confirm or cancel.
type ChangeStatus struct {
	repo   domain.Repository
	audit  audit.Recorder
	action string
	apply  func(*models.Appointment) error
}

func NewConfirmAppointment(
	repo domain.Repository,
	rec audit.Recorder,
) *ChangeStatus {
	return &ChangeStatus{repo: repo, audit: rec, action: audit.ActionConfirm, apply: domain.Confirm}
}

func NewCancelAppointment(
	repo domain.Repository,
	rec audit.Recorder,
) *ChangeStatus {
	return &ChangeStatus{repo: repo, audit: rec, action: audit.ActionCancel, apply: domain.Cancel}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	from := ap.Status

	if err := uc.apply(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.SetStatus(ctx, ap.ID, domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    uc.action,
		Entity:    Entity,
		EntityID:  audit.ID(ap.ID),
		Metadata:  map[string]string{"from": from},
		RequestID: audit.RequestID(ctx),
	})

	return ap, nil
}
