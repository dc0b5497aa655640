package catalog

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/validators"
)

type Category string

const (
	CategoryHair        Category = "Cabello"
	CategoryNails       Category = "Uñas"
	CategoryMakeup      Category = "Maquillaje"
	CategoryFacial      Category = "Facial"
	CategoryBody        Category = "Corporal"
	CategoryHairRemoval Category = "Depilación"
	CategoryMassage     Category = "Masajes"
	CategoryOther       Category = "Otro"
)

var Categories = []Category{
	CategoryHair,
	CategoryNails,
	CategoryMakeup,
	CategoryFacial,
	CategoryBody,
	CategoryHairRemoval,
	CategoryMassage,
	CategoryOther,
}

func IsCategory(s string) bool {
	for _, c := range Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Duration bounds. The table check accepts 5 minutes; bookable services
// need at least MinDuration.
const (
	MinDuration      = 15
	MinDurationStore = 5
	MaxDuration      = 480
)

var (
	MinPrice = decimal.New(1, -2)
	MaxPrice = decimal.NewFromInt(10000)
)

// Filter narrows List. Nil pointers and empty strings match everything.
type Filter struct {
	Search   string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Active   *bool
}

type Repository interface {
	Create(ctx context.Context, s *models.Service) error
	GetByID(ctx context.Context, id uint) (*models.Service, error)
	List(ctx context.Context, f Filter) ([]models.Service, error)
	Update(ctx context.Context, s *models.Service) error
	Delete(ctx context.Context, id uint) error

	NameTaken(ctx context.Context, name string, excludeID uint) (bool, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

func Validate(s *models.Service) error {
	errs := httperr.FieldErrors{}

	switch {
	case validators.IsBlank(s.Name):
		errs.Add("Nombre", "El nombre del servicio es obligatorio")
	case !validators.MinLen(s.Name, 3):
		errs.Add("Nombre", "El nombre debe tener al menos 3 caracteres")
	case !validators.MaxLen(s.Name, 100):
		errs.Add("Nombre", "El nombre no puede exceder 100 caracteres")
	}

	switch {
	case validators.IsBlank(s.Description):
		errs.Add("Descripcion", "La descripción es obligatoria")
	case !validators.MinLen(s.Description, 10):
		errs.Add("Descripcion", "La descripción debe tener al menos 10 caracteres")
	case !validators.MaxLen(s.Description, 500):
		errs.Add("Descripcion", "La descripción no puede exceder 500 caracteres")
	}

	switch {
	case s.Price.LessThan(MinPrice):
		errs.Add("Precio", "El precio debe ser mayor a cero")
	case !s.Price.Equal(s.Price.Round(2)):
		errs.Add("Precio", "El precio no puede tener más de 2 decimales")
	case s.Price.GreaterThan(MaxPrice):
		errs.Add("Precio", "El precio no puede exceder $10,000")
	}

	switch {
	case s.DurationMinutes <= 0:
		errs.Add("DuracionMinutos", "La duración debe ser mayor a cero")
	case s.DurationMinutes < MinDuration:
		errs.Add("DuracionMinutos", "La duración mínima es de 15 minutos")
	case s.DurationMinutes > MaxDuration:
		errs.Add("DuracionMinutos", "La duración máxima es de 8 horas (480 minutos)")
	}

	switch {
	case validators.IsBlank(s.Category):
		errs.Add("Categoria", "La categoría es obligatoria")
	case !IsCategory(s.Category):
		errs.Add("Categoria", "Categoría no válida")
	}

	return errs.Err()
}

func DurationText(minutes int) string {
	return fmt.Sprintf("%d minutos", minutes)
}

func DuplicateName() error {
	return httperr.ErrConstraint("Nombre", "Ya existe un servicio con este nombre")
}

func NotFound() error {
	return httperr.ErrNotFound("Servicio no encontrado")
}
