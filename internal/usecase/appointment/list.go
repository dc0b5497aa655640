package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/timezone"
)

type ListAppointments struct {
	repo  domain.Repository
	clock timezone.Clock
}

func NewListAppointments(
	repo domain.Repository,
	clock timezone.Clock,
) *ListAppointments {
	return &ListAppointments{
		repo:  repo,
		clock: clock,
	}
}

func (uc *ListAppointments) Execute(ctx context.Context, f domain.Filter) ([]models.Appointment, error) {
	return uc.repo.List(ctx, f)
}

func (uc *ListAppointments) Get(ctx context.Context, id uint) (*models.Appointment, error) {
	return uc.repo.GetByID(ctx, id)
}

// Today returns every appointment whose date is the current calendar day
// in the salon's zone, whatever its time of day.
func (uc *ListAppointments) Today(ctx context.Context) ([]models.Appointment, error) {
	today := timezone.Today(uc.clock)
	return uc.repo.List(ctx, domain.Filter{Date: &today})
}

// Agenda lists a day with client and service names. A zero day means today.
func (uc *ListAppointments) Agenda(ctx context.Context, day time.Time) ([]domain.AgendaEntry, error) {
	if day.IsZero() {
		day = timezone.Today(uc.clock)
	}
	return uc.repo.ListAgenda(ctx, day)
}
