package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ListResponse[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Page writes a page of rows together with the unpaged total.
func Page[T any](c *gin.Context, data []T, total int64) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: total,
	})
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"mensaje": message})
}

// MessageWith pairs a confirmation with the affected row under key, as in
// {"mensaje": "...", "cita": {...}}.
func MessageWith(c *gin.Context, message, key string, entity any) {
	c.JSON(http.StatusOK, gin.H{"mensaje": message, key: entity})
}
