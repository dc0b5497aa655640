package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/timezone"
)

const Entity = "cita"

type UpdateAppointment struct {
	repo  domain.Repository
	clock timezone.Clock
	audit audit.Recorder
}

func NewUpdateAppointment(
	repo domain.Repository,
	clock timezone.Clock,
	audit audit.Recorder,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		clock: clock,
		audit: audit,
	}
}

// Execute replaces client, service, date, time, status, notes and
// observations. References are left to the store; an empty status keeps
// the current one.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	in domain.Input,
) (*models.Appointment, error) {

	keepStatus := in.Status == ""

	f, err := domain.Normalize(in, uc.clock.Location())
	if err != nil {
		return nil, err
	}

	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	from := current.Status

	next := models.Appointment{
		ClientID:     f.ClientID,
		ServiceID:    f.ServiceID,
		Date:         f.Date,
		Time:         f.Time,
		Status:       string(f.Status),
		Notes:        f.Notes,
		Observations: f.Observations,
	}
	if keepStatus {
		next.Status = current.Status
	}

	if err := domain.Replace(current, next); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, current); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    audit.ActionUpdate,
		Entity:    Entity,
		EntityID:  audit.ID(current.ID),
		Metadata:  map[string]string{"from": from, "to": current.Status},
		RequestID: audit.RequestID(ctx),
	})

	return current, nil
}
