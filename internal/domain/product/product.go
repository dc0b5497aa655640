package product

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/validators"
)

const MaxStock = 10000

var (
	MinPrice = decimal.New(1, -2)
	MaxPrice = decimal.NewFromInt(10000)
)

type Filter struct {
	Search   string
	Category string
	Active   *bool
}

type Repository interface {
	Create(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	List(ctx context.Context, f Filter) ([]models.Product, error)
	// ListStockBelow returns products whose stock is strictly below limit.
	ListStockBelow(ctx context.Context, limit int) ([]models.Product, error)
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id uint) error

	// AdjustStock adds delta to the stock in a single statement. The
	// result must stay within 0..MaxStock; otherwise nothing is written
	// and StockOutOfRange is returned.
	AdjustStock(ctx context.Context, id uint, delta int) (*models.Product, error)
	SetImageURL(ctx context.Context, id uint, url string) (*models.Product, error)
}

func Validate(p *models.Product) error {
	errs := httperr.FieldErrors{}

	if validators.IsBlank(p.Name) {
		errs.Add("Nombre", "El nombre es obligatorio")
	} else if !validators.MaxLen(p.Name, 100) {
		errs.Add("Nombre", "El nombre no puede exceder 100 caracteres")
	}

	if p.Description != nil && !validators.MaxLen(*p.Description, 500) {
		errs.Add("Descripcion", "La descripción no puede exceder 500 caracteres")
	}

	if p.Price.LessThan(MinPrice) {
		errs.Add("Precio", "El precio debe ser mayor a cero")
	} else if !p.Price.Equal(p.Price.Round(2)) {
		errs.Add("Precio", "El precio no puede tener más de 2 decimales")
	} else if p.Price.GreaterThan(MaxPrice) {
		errs.Add("Precio", "El precio no puede exceder $10,000")
	}

	if p.Stock < 0 || p.Stock > MaxStock {
		errs.Add("Stock", "El stock debe estar entre 0 y 10000")
	}
	if p.MinStock < 0 || p.MinStock > MaxStock {
		errs.Add("StockMinimo", "El stock mínimo debe estar entre 0 y 10000")
	}

	if p.Brand != nil && !validators.MaxLen(*p.Brand, 50) {
		errs.Add("Marca", "La marca no puede exceder 50 caracteres")
	}
	if p.Category != nil && !validators.MaxLen(*p.Category, 50) {
		errs.Add("Categoria", "La categoría no puede exceder 50 caracteres")
	}

	return errs.Err()
}

func StockOutOfRange() error {
	return httperr.ErrValidation(map[string]string{
		"Stock": "El stock resultante debe estar entre 0 y 10000",
	})
}

func NotFound() error {
	return httperr.ErrNotFound("Producto no encontrado")
}
