package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/timezone"
	"github.com/BruksfildServices01/salon-backoffice/internal/validators"
)

// Input is the raw form of an appointment as it arrives from a caller.
// Date and Time stay strings until Normalize has checked them.
type Input struct {
	ClientID     uint
	ServiceID    uint
	Date         string
	Time         string
	Status       string
	Notes        string
	Observations *string
}

// Fields is a checked Input.
type Fields struct {
	ClientID     uint
	ServiceID    uint
	Date         time.Time
	Time         string
	Status       Status
	Notes        string
	Observations *string
}

// Normalize validates in and parses its date in loc. An empty status
// means the initial one.
func Normalize(in Input, loc *time.Location) (Fields, error) {
	errs := httperr.FieldErrors{}
	out := Fields{
		ClientID:     in.ClientID,
		ServiceID:    in.ServiceID,
		Notes:        in.Notes,
		Observations: in.Observations,
	}

	if in.ClientID == 0 {
		errs.Add("ClienteId", "El cliente es obligatorio")
	}
	if in.ServiceID == 0 {
		errs.Add("ServicioId", "El servicio es obligatorio")
	}

	if validators.IsBlank(in.Date) {
		errs.Add("Fecha", "La fecha es obligatoria")
	} else if d, err := timezone.ParseDate(in.Date, loc); err != nil {
		errs.Add("Fecha", "La fecha no es válida")
	} else {
		out.Date = d
	}

	if validators.IsBlank(in.Time) {
		errs.Add("Hora", "La hora es obligatoria")
	} else if hm, err := timezone.ParseTimeOfDay(in.Time); err != nil {
		errs.Add("Hora", "La hora no es válida")
	} else {
		out.Time = hm
	}

	if in.Status == "" {
		out.Status = InitialStatus()
	} else if st, ok := ParseStatus(in.Status); ok {
		out.Status = st
	} else {
		errs.Add("Estado", "Estado no válido")
	}

	if !validators.MaxLen(in.Notes, 500) {
		errs.Add("Notas", "Las notas no pueden exceder 500 caracteres")
	}
	if in.Observations != nil && !validators.MaxLen(*in.Observations, 500) {
		errs.Add("Observaciones", "Las observaciones no pueden exceder 500 caracteres")
	}

	return out, errs.Err()
}
