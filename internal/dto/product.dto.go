package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

type ProductRequest struct {
	ID          uint            `json:"productoId"`
	Name        string          `json:"nombre"`
	Description *string         `json:"descripcion"`
	Price       decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	MinStock    *int            `json:"stockMinimo"`
	Brand       *string         `json:"marca"`
	Category    *string         `json:"categoria"`
	Active      *bool           `json:"activo"`
}

func (r ProductRequest) ToModel() *models.Product {
	minStock := models.DefaultMinStock
	if r.MinStock != nil {
		minStock = *r.MinStock
	}

	return &models.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		MinStock:    minStock,
		Brand:       r.Brand,
		Category:    r.Category,
		Active:      boolOr(r.Active, true),
	}
}

type ProductResponse struct {
	ID           uint            `json:"productoId"`
	Name         string          `json:"nombre"`
	Description  *string         `json:"descripcion"`
	Price        decimal.Decimal `json:"precio"`
	Stock        int             `json:"stock"`
	MinStock     int             `json:"stockMinimo"`
	Brand        *string         `json:"marca"`
	Category     *string         `json:"categoria"`
	Active       bool            `json:"activo"`
	ImageURL     *string         `json:"imagenUrl"`
	RegisteredAt time.Time       `json:"fechaRegistro"`
	LowStock     bool            `json:"stockBajo"`
}

func NewProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Stock:        p.Stock,
		MinStock:     p.MinStock,
		Brand:        p.Brand,
		Category:     p.Category,
		Active:       p.Active,
		ImageURL:     p.ImageURL,
		RegisteredAt: p.RegisteredAt,
		LowStock:     p.LowStock(),
	}
}

func NewProductList(in []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(in))
	for i := range in {
		out = append(out, NewProductResponse(&in[i]))
	}
	return out
}
