package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-backoffice/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/timezone"
)

type AppointmentRequest struct {
	ID           uint    `json:"citaId"`
	ClientID     uint    `json:"clienteId"`
	ServiceID    uint    `json:"servicioId"`
	Date         string  `json:"fecha"`
	Time         string  `json:"hora"`
	Status       string  `json:"estado"`
	Notes        string  `json:"notas"`
	Observations *string `json:"observaciones"`
}

func (r AppointmentRequest) ToInput() appointment.Input {
	return appointment.Input{
		ClientID:     r.ClientID,
		ServiceID:    r.ServiceID,
		Date:         r.Date,
		Time:         r.Time,
		Status:       r.Status,
		Notes:        r.Notes,
		Observations: r.Observations,
	}
}

type AppointmentResponse struct {
	ID           uint      `json:"citaId"`
	ClientID     uint      `json:"clienteId"`
	ServiceID    uint      `json:"servicioId"`
	Date         string    `json:"fecha"`
	Time         string    `json:"hora"`
	Status       string    `json:"estado"`
	Notes        string    `json:"notas"`
	Observations *string   `json:"observaciones"`
	CreatedAt    time.Time `json:"fechaCreacion"`
	StartsAt     time.Time `json:"fechaHoraCompleta"`
}

func NewAppointmentResponse(ap *models.Appointment, loc *time.Location) AppointmentResponse {
	return AppointmentResponse{
		ID:           ap.ID,
		ClientID:     ap.ClientID,
		ServiceID:    ap.ServiceID,
		Date:         timezone.FormatDate(ap.Date),
		Time:         ap.Time,
		Status:       ap.Status,
		Notes:        ap.Notes,
		Observations: ap.Observations,
		CreatedAt:    ap.CreatedAt.In(loc),
		StartsAt:     ap.StartsAt(loc),
	}
}

func NewAppointmentList(in []models.Appointment, loc *time.Location) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(in))
	for i := range in {
		out = append(out, NewAppointmentResponse(&in[i], loc))
	}
	return out
}
