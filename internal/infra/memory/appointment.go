package memory

import (
	"context"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/timezone"
)

type AppointmentRepository struct {
	s *Store
}

// checkRefs plays the part of the foreign keys. mu must be held.
func (r *AppointmentRepository) checkRefs(ap *models.Appointment) error {
	if _, ok := r.s.clients[ap.ClientID]; !ok {
		return domain.UnknownClient()
	}
	if _, ok := r.s.services[ap.ServiceID]; !ok {
		return domain.UnknownService()
	}
	return nil
}

func (r *AppointmentRepository) Create(_ context.Context, ap *models.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkRefs(ap); err != nil {
		return err
	}

	now := r.s.now()
	ap.ID = r.s.next("appointments")
	if ap.CreatedAt.IsZero() {
		ap.CreatedAt = now
	}
	ap.UpdatedAt = now
	r.s.appointments[ap.ID] = *ap
	return nil
}

func (r *AppointmentRepository) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ap, ok := r.s.appointments[id]
	if !ok {
		return nil, domain.NotFound()
	}
	return &ap, nil
}

func sameDay(a, b time.Time) bool {
	return timezone.FormatDate(a) == timezone.FormatDate(b)
}

func sortAppointments(apps []models.Appointment) {
	sort.SliceStable(apps, func(i, j int) bool {
		di, dj := timezone.FormatDate(apps[i].Date), timezone.FormatDate(apps[j].Date)
		if di != dj {
			return di < dj
		}
		if apps[i].Time != apps[j].Time {
			return apps[i].Time < apps[j].Time
		}
		return apps[i].ID < apps[j].ID
	})
}

func (r *AppointmentRepository) List(_ context.Context, f domain.Filter) ([]models.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Appointment{}
	for _, ap := range r.s.appointments {
		switch {
		case f.Date != nil && !sameDay(ap.Date, *f.Date):
			continue
		case f.ClientID != 0 && ap.ClientID != f.ClientID:
			continue
		case f.ServiceID != 0 && ap.ServiceID != f.ServiceID:
			continue
		case f.Status != "" && ap.Status != string(f.Status):
			continue
		}
		out = append(out, ap)
	}
	sortAppointments(out)
	return out, nil
}

func (r *AppointmentRepository) ListAgenda(_ context.Context, day time.Time) ([]domain.AgendaEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var apps []models.Appointment
	for _, ap := range r.s.appointments {
		if sameDay(ap.Date, day) {
			apps = append(apps, ap)
		}
	}
	sortAppointments(apps)

	out := make([]domain.AgendaEntry, 0, len(apps))
	for _, ap := range apps {
		c := r.s.clients[ap.ClientID]
		svc := r.s.services[ap.ServiceID]
		out = append(out, domain.AgendaEntry{
			Appointment:     ap,
			ClientName:      c.FirstName + " " + c.LastName,
			ServiceName:     svc.Name,
			DurationMinutes: svc.DurationMinutes,
		})
	}
	return out, nil
}

func (r *AppointmentRepository) Update(_ context.Context, ap *models.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.appointments[ap.ID]
	if !ok {
		return domain.NotFound()
	}
	if err := r.checkRefs(ap); err != nil {
		return err
	}

	current.ClientID = ap.ClientID
	current.ServiceID = ap.ServiceID
	current.Date = ap.Date
	current.Time = ap.Time
	current.Status = ap.Status
	current.Notes = ap.Notes
	current.Observations = ap.Observations
	current.UpdatedAt = r.s.now()

	r.s.appointments[ap.ID] = current
	*ap = current
	return nil
}

func (r *AppointmentRepository) SetStatus(_ context.Context, id uint, status domain.Status) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ap, ok := r.s.appointments[id]
	if !ok {
		return domain.NotFound()
	}
	ap.Status = string(status)
	ap.UpdatedAt = r.s.now()
	r.s.appointments[id] = ap
	return nil
}

func (r *AppointmentRepository) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.appointments[id]; !ok {
		return domain.NotFound()
	}
	delete(r.s.appointments, id)
	return nil
}

func (r *AppointmentRepository) ClientExists(_ context.Context, id uint) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.clients[id]
	return ok, nil
}

func (r *AppointmentRepository) ServiceExists(_ context.Context, id uint) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.services[id]
	return ok, nil
}

var (
	_ domain.Repository = (*AppointmentRepository)(nil)
	_ domain.References = (*AppointmentRepository)(nil)
)
