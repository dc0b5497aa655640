package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	refs  domain.References
	clock timezone.Clock
	audit audit.Recorder
}

func NewCreateAppointment(
	repo domain.Repository,
	refs domain.References,
	clock timezone.Clock,
	audit audit.Recorder,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		refs:  refs,
		clock: clock,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in domain.Input,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Required fields, date and time in salon time
	// --------------------------------------------------
	f, err := domain.Normalize(in, uc.clock.Location())
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Client and service must exist
	// --------------------------------------------------
	ok, err := uc.refs.ClientExists(ctx, f.ClientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.UnknownClient()
	}

	ok, err = uc.refs.ServiceExists(ctx, f.ServiceID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.UnknownService()
	}

	// --------------------------------------------------
	// Persist; the foreign keys catch a row deleted meanwhile
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:     f.ClientID,
		ServiceID:    f.ServiceID,
		Date:         f.Date,
		Time:         f.Time,
		Status:       string(f.Status),
		Notes:        f.Notes,
		Observations: f.Observations,
		CreatedAt:    uc.clock.Now(),
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:    audit.ActionCreate,
		Entity:    Entity,
		EntityID:  audit.ID(ap.ID),
		RequestID: audit.RequestID(ctx),
	})

	return ap, nil
}
