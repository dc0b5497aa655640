package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/timezone"
)

type ClientRequest struct {
	ID        uint    `json:"clienteId"`
	FirstName string  `json:"nombre"`
	LastName  string  `json:"apellido"`
	Phone     string  `json:"telefono"`
	Email     string  `json:"email"`
	Address   *string `json:"direccion"`
	BirthDate string  `json:"fechaNacimiento"`
}

// ToModel parses the birth date in loc. A blank date is left zero so the
// validation reports it as missing.
func (r ClientRequest) ToModel(loc *time.Location) (*models.Client, error) {
	c := &models.Client{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Email:     r.Email,
		Address:   r.Address,
	}

	if r.BirthDate != "" {
		d, err := timezone.ParseDate(r.BirthDate, loc)
		if err != nil {
			return nil, httperr.ErrValidation(map[string]string{
				"FechaNacimiento": "La fecha de nacimiento no es válida",
			})
		}
		c.BirthDate = d
	}
	return c, nil
}

type ClientResponse struct {
	ID           uint      `json:"clienteId"`
	FirstName    string    `json:"nombre"`
	LastName     string    `json:"apellido"`
	Phone        string    `json:"telefono"`
	Email        string    `json:"email"`
	Address      *string   `json:"direccion"`
	BirthDate    string    `json:"fechaNacimiento"`
	RegisteredAt time.Time `json:"fechaRegistro"`
}

func NewClientResponse(c *models.Client) ClientResponse {
	return ClientResponse{
		ID:           c.ID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
		BirthDate:    timezone.FormatDate(c.BirthDate),
		RegisteredAt: c.RegisteredAt,
	}
}

func NewClientList(in []models.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(in))
	for i := range in {
		out = append(out, NewClientResponse(&in[i]))
	}
	return out
}
