package dto

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-backoffice/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

type ServiceRequest struct {
	ID              uint            `json:"servicioId"`
	Name            string          `json:"nombre"`
	Description     string          `json:"descripcion"`
	Price           decimal.Decimal `json:"precio"`
	DurationMinutes int             `json:"duracionMinutos"`
	Category        string          `json:"categoria"`
	Active          *bool           `json:"activo"`
}

// ToModel defaults Active to true when omitted.
func (r ServiceRequest) ToModel() *models.Service {
	return &models.Service{
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		Category:        r.Category,
		Active:          boolOr(r.Active, true),
	}
}

type ServiceResponse struct {
	ID              uint            `json:"servicioId"`
	Name            string          `json:"nombre"`
	Description     string          `json:"descripcion"`
	Price           decimal.Decimal `json:"precio"`
	DurationMinutes int             `json:"duracionMinutos"`
	DurationText    string          `json:"duracionTexto"`
	Category        string          `json:"categoria"`
	Active          bool            `json:"activo"`
}

func NewServiceResponse(s *models.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		DurationText:    catalog.DurationText(s.DurationMinutes),
		Category:        s.Category,
		Active:          s.Active,
	}
}

func NewServiceList(in []models.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(in))
	for i := range in {
		out = append(out, NewServiceResponse(&in[i]))
	}
	return out
}
