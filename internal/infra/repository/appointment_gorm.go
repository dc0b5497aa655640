package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/timezone"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Appointment (create / read)
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(ctx context.Context, ap *models.Appointment) error {
	return translateWrite("create appointment", r.db.WithContext(ctx).Create(ap).Error)
}

func (r *AppointmentGormRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, translateRead("get appointment", err, domain.NotFound)
	}
	return &ap, nil
}

// Dates are compared as YYYY-MM-DD strings so the zone of the filter value
// never shifts the calendar day.
func (r *AppointmentGormRepository) List(ctx context.Context, f domain.Filter) ([]models.Appointment, error) {
	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if f.Date != nil {
		q = q.Where("date = ?", timezone.FormatDate(*f.Date))
	}
	if f.ClientID != 0 {
		q = q.Where("client_id = ?", f.ClientID)
	}
	if f.ServiceID != 0 {
		q = q.Where("service_id = ?", f.ServiceID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}

	var apps []models.Appointment
	if err := q.Order("date ASC, time ASC, id ASC").Find(&apps).Error; err != nil {
		return nil, translateRead("list appointments", err, domain.NotFound)
	}
	return apps, nil
}

type agendaRow struct {
	models.Appointment `gorm:"embedded"`
	ClientName         string
	ServiceName        string
	ServiceDuration    int
}

func (r *AppointmentGormRepository) ListAgenda(ctx context.Context, day time.Time) ([]domain.AgendaEntry, error) {
	var rows []agendaRow
	if err := r.db.WithContext(ctx).
		Table("appointments AS a").
		Select(`a.*,
			c.first_name || ' ' || c.last_name AS client_name,
			s.name AS service_name,
			s.duration_minutes AS service_duration`).
		Joins("JOIN clients c ON c.id = a.client_id").
		Joins("JOIN services s ON s.id = a.service_id").
		Where("a.date = ?", timezone.FormatDate(day)).
		Order("a.time ASC, a.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, translateRead("list agenda", err, domain.NotFound)
	}

	out := make([]domain.AgendaEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.AgendaEntry{
			Appointment:     row.Appointment,
			ClientName:      row.ClientName,
			ServiceName:     row.ServiceName,
			DurationMinutes: row.ServiceDuration,
		})
	}
	return out, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

// Update replaces the editable fields of the row with ap.ID and reloads ap.
// The foreign keys reject dangling client or service references.
func (r *AppointmentGormRepository) Update(ctx context.Context, ap *models.Appointment) error {
	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Updates(map[string]any{
			"client_id":    ap.ClientID,
			"service_id":   ap.ServiceID,
			"date":         ap.Date,
			"time":         ap.Time,
			"status":       ap.Status,
			"notes":        ap.Notes,
			"observations": ap.Observations,
		})
	if res.Error != nil {
		return translateWrite("update appointment", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound()
	}

	return translateRead("reload appointment", r.db.WithContext(ctx).First(ap, ap.ID).Error, domain.NotFound)
}

func (r *AppointmentGormRepository) SetStatus(ctx context.Context, id uint, status domain.Status) error {
	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return translateWrite("set appointment status", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound()
	}
	return nil
}

func (r *AppointmentGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return translateDelete("delete appointment", res.Error, "No se puede eliminar la cita")
	}
	if res.RowsAffected == 0 {
		return domain.NotFound()
	}
	return nil
}

// --------------------------------------------------
// References
// --------------------------------------------------

func (r *AppointmentGormRepository) ClientExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.Client{}, id)
}

func (r *AppointmentGormRepository) ServiceExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &models.Service{}, id)
}

func (r *AppointmentGormRepository) exists(ctx context.Context, model any, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Compile-time check
var (
	_ domain.Repository = (*AppointmentGormRepository)(nil)
	_ domain.References = (*AppointmentGormRepository)(nil)
)
