package client

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/timezone"
	"github.com/BruksfildServices01/salon-backoffice/internal/validators"
)

const MinimumAge = 18

// Filter.Search is a case-insensitive substring over first name, last
// name, phone and email.
type Filter struct {
	Search string
}

type Repository interface {
	Create(ctx context.Context, c *models.Client) error
	GetByID(ctx context.Context, id uint) (*models.Client, error)
	List(ctx context.Context, f Filter) ([]models.Client, error)
	// SearchNameOrPhone matches term as a substring of the first name or
	// the phone.
	SearchNameOrPhone(ctx context.Context, term string) ([]models.Client, error)
	Update(ctx context.Context, c *models.Client) error
	Delete(ctx context.Context, id uint) error

	// EmailTaken reports whether another client (not excludeID) already
	// uses email. The comparison is case-sensitive.
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// Validate checks the fields of c. now decides the age rule: a client born
// on this calendar day 18 years ago passes.
func Validate(c *models.Client, now time.Time) error {
	errs := httperr.FieldErrors{}

	if validators.IsBlank(c.FirstName) {
		errs.Add("Nombre", "El nombre es obligatorio")
	} else if !validators.MaxLen(c.FirstName, 50) {
		errs.Add("Nombre", "El nombre no puede exceder 50 caracteres")
	}

	if validators.IsBlank(c.LastName) {
		errs.Add("Apellido", "El apellido es obligatorio")
	} else if !validators.MaxLen(c.LastName, 50) {
		errs.Add("Apellido", "El apellido no puede exceder 50 caracteres")
	}

	if validators.IsBlank(c.Phone) {
		errs.Add("Telefono", "El teléfono es obligatorio")
	} else if !validators.IsPhone(c.Phone) {
		errs.Add("Telefono", "El teléfono debe tener entre 8 y 10 dígitos")
	}

	if validators.IsBlank(c.Email) {
		errs.Add("Email", "El email es obligatorio")
	} else if !validators.IsEmail(c.Email) || !validators.MaxLen(c.Email, 100) {
		errs.Add("Email", "El formato del email no es válido")
	}

	if c.Address != nil && !validators.MaxLen(*c.Address, 200) {
		errs.Add("Direccion", "La dirección no puede exceder 200 caracteres")
	}

	if c.BirthDate.IsZero() {
		errs.Add("FechaNacimiento", "La fecha de nacimiento es obligatoria")
	} else if !IsAdult(c.BirthDate, now) {
		errs.Add("FechaNacimiento", "El cliente debe ser mayor de 18 años")
	}

	return errs.Err()
}

func IsAdult(birth, now time.Time) bool {
	limit := timezone.DateOf(now).AddDate(-MinimumAge, 0, 0)
	by, bm, bd := birth.Date()
	return !time.Date(by, bm, bd, 0, 0, 0, 0, limit.Location()).After(limit)
}

// DuplicateEmail is the error both the fast-fail check and the store's
// unique index report.
func DuplicateEmail() error {
	return httperr.ErrConstraint("Email", "Este email ya está registrado")
}

func NotFound() error {
	return httperr.ErrNotFound("Cliente no encontrado")
}
