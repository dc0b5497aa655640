package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
)

// pathID reads :id. On failure it has already answered 400.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "ID inválido")
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos")
		return false
	}
	return true
}

// sameID answers 400 when the id in the body is not the one in the path.
func sameID(c *gin.Context, fromPath, fromBody uint, message string) bool {
	if fromPath != fromBody {
		httperr.BadRequest(c, "id_mismatch", message)
		return false
	}
	return true
}

func queryUint(c *gin.Context, key string) (uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, httperr.ErrValidation(map[string]string{key: "Valor no válido"})
	}
	return uint(v), nil
}

func queryBool(c *gin.Context, key string) (*bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, httperr.ErrValidation(map[string]string{key: "Valor no válido"})
	}
	return &v, nil
}
