package appointment

import (
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusConfirmed)
	return nil
}

func Cancel(ap *models.Appointment) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusCancelled)
	return nil
}

// Complete ignores the current status on purpose: marking an appointment
// done from the front desk always wins.
func Complete(ap *models.Appointment) {
	ap.Status = string(StatusCompleted)
}

// Replace copies the mutable fields of next onto current, refusing status
// moves the lifecycle does not allow.
func Replace(current *models.Appointment, next models.Appointment) error {
	if err := CanTransition(Status(current.Status), Status(next.Status)); err != nil {
		return err
	}

	current.ClientID = next.ClientID
	current.ServiceID = next.ServiceID
	current.Date = next.Date
	current.Time = next.Time
	current.Status = next.Status
	current.Notes = next.Notes
	current.Observations = next.Observations
	return nil
}
