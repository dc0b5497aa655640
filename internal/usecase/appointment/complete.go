package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit audit.Recorder,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute marks the appointment completed whatever its current status.
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	from := ap.Status

	domain.Complete(ap)

	if err := uc.repo.SetStatus(ctx, ap.ID, domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    audit.ActionComplete,
		Entity:    Entity,
		EntityID:  audit.ID(ap.ID),
		Metadata:  map[string]string{"from": from},
		RequestID: audit.RequestID(ctx),
	})

	return ap, nil
}
