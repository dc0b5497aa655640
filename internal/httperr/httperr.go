package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const internalMessage = "Error interno del servidor"

type HTTPError struct {
	Message string            `json:"mensaje"`
	Code    string            `json:"codigo,omitempty"`
	Fields  map[string]string `json:"errores,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, HTTPError{Message: message})
}

func Internal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, HTTPError{Message: internalMessage})
}

func Unavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}

// StatusFor maps a domain error kind to its HTTP status.
func StatusFor(kind Kind) int {
	switch kind {
	case KindValidation, KindReference, KindInvalidState:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConstraint, KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as the uniform error envelope. Errors that are not
// business errors are logged and answered with a generic 500.
func Respond(c *gin.Context, err error) {
	be, ok := As(err)
	if !ok {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("request failed")
		Internal(c)
		return
	}

	body := HTTPError{Message: be.Message, Fields: be.Fields}
	if be.Kind == KindInvalidState {
		body.Code = be.Code
	}
	if body.Message == "" {
		body.Message = be.Code
	}

	c.JSON(StatusFor(be.Kind), body)
}
