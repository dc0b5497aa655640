package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit audit.Recorder,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, appointmentID uint) error {
	if err := uc.repo.Delete(ctx, appointmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    audit.ActionDelete,
		Entity:    Entity,
		EntityID:  audit.ID(appointmentID),
		RequestID: audit.RequestID(ctx),
	})
	return nil
}
