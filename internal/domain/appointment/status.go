package appointment

import "github.com/BruksfildServices01/salon-backoffice/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "Pendiente"
	StatusConfirmed Status = "Confirmada"
	StatusCompleted Status = "Completada"
	StatusCancelled Status = "Cancelada"
)

var allowed = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCompleted, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func InitialStatus() Status {
	return StatusPending
}

func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return st, true
	}
	return "", false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanTransition accepts staying in the same status or moving along one of
// the allowed edges. Completed and Cancelled have no outgoing edges.
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}
	for _, next := range allowed[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrInvalidState(
		"invalid_transition",
		"No se puede cambiar una cita "+stateLabel(from)+" a "+string(to),
	)
}

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrInvalidState("invalid_state", "Solo se pueden confirmar citas pendientes")
	}
	return nil
}

func CanCancel(current Status) error {
	if current.IsTerminal() {
		return httperr.ErrInvalidState("invalid_state", "La cita ya está "+stateLabel(current))
	}
	return nil
}

func stateLabel(s Status) string {
	if s == "" {
		return "sin estado"
	}
	return string(s)
}
