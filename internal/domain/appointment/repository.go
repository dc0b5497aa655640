package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

// Filter narrows List. Zero values match everything.
type Filter struct {
	Date      *time.Time
	ClientID  uint
	ServiceID uint
	Status    Status
}

// AgendaEntry is an appointment with the names the agenda page shows.
type AgendaEntry struct {
	Appointment     models.Appointment
	ClientName      string
	ServiceName     string
	DurationMinutes int
}

type Repository interface {
	// -------- Appointment (create / read) --------
	Create(ctx context.Context, ap *models.Appointment) error
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)
	List(ctx context.Context, f Filter) ([]models.Appointment, error)
	ListAgenda(ctx context.Context, day time.Time) ([]AgendaEntry, error)

	// -------- Appointment (state change) --------
	Update(ctx context.Context, ap *models.Appointment) error
	SetStatus(ctx context.Context, id uint, status Status) error
	Delete(ctx context.Context, id uint) error
}

// References answers whether the rows an appointment points at exist.
type References interface {
	ClientExists(ctx context.Context, id uint) (bool, error)
	ServiceExists(ctx context.Context, id uint) (bool, error)
}
