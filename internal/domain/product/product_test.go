package product

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

func TestValidate(t *testing.T) {
	valid := func() *models.Product {
		return &models.Product{
			Name:     "Shampoo de argán",
			Price:    decimal.RequireFromString("4500"),
			Stock:    12,
			MinStock: models.DefaultMinStock,
		}
	}

	t.Run("Valid_NoError", func(t *testing.T) {
		assert.NoError(t, Validate(valid()))
	})

	t.Run("Invalid_FieldsReported", func(t *testing.T) {
		p := valid()
		p.Name = ""
		p.Price = decimal.NewFromInt(-1)
		p.Stock = MaxStock + 1
		brand := strings.Repeat("x", 51)
		p.Brand = &brand

		be, ok := httperr.As(Validate(p))
		require.True(t, ok)
		for _, k := range []string{"Nombre", "Precio", "Stock", "Marca"} {
			assert.Contains(t, be.Fields, k)
		}
	})
}

func TestValidate_PriceBounds(t *testing.T) {
	withPrice := func(raw string) *models.Product {
		return &models.Product{
			Name:     "Acondicionador",
			Price:    decimal.RequireFromString(raw),
			Stock:    3,
			MinStock: models.DefaultMinStock,
		}
	}

	for _, raw := range []string{"0.01", "10000", "25.90"} {
		assert.NoError(t, Validate(withPrice(raw)), raw)
	}

	for raw, msg := range map[string]string{
		"0.00":     "El precio debe ser mayor a cero",
		"0.004":    "El precio debe ser mayor a cero",
		"10000.01": "El precio no puede exceder $10,000",
		"25.999":   "El precio no puede tener más de 2 decimales",
	} {
		be, ok := httperr.As(Validate(withPrice(raw)))
		require.True(t, ok, raw)
		assert.Equal(t, msg, be.Fields["Precio"], raw)
	}
}

func TestLowStock(t *testing.T) {
	assert.True(t, models.Product{Stock: 5, MinStock: 5}.LowStock())
	assert.False(t, models.Product{Stock: 6, MinStock: 5}.LowStock())
}
