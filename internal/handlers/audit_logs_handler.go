package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-backoffice/internal/audit"
	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/httpresp"
	"github.com/BruksfildServices01/salon-backoffice/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

type AuditLogsHandler struct {
	logs *audit.Logger
	loc  *time.Location
}

func NewAuditLogsHandler(logs *audit.Logger, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	f, err := h.filter(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Page(c, logs, total)
}

// filter reads ?entity&action&from&to&page&limit. Absent values take the
// defaults (page 1, limit 50); malformed ones are a validation error.
func (h *AuditLogsHandler) filter(c *gin.Context) (audit.Filter, error) {
	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   1,
		Limit:  defaultAuditLimit,
	}
	errs := httperr.FieldErrors{}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page <= 0 {
			errs.Add("page", "Debe ser un entero mayor a cero")
		} else {
			f.Page = page
		}
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 || limit > maxAuditLimit {
			errs.Add("limit", "Debe ser un entero entre 1 y 200")
		} else {
			f.Limit = limit
		}
	}

	// --------------------------------------------------
	// Date range, inclusive on both ends
	// --------------------------------------------------

	if raw := c.Query("from"); raw != "" {
		from, err := timezone.ParseDate(raw, h.loc)
		if err != nil {
			errs.Add("from", "La fecha no es válida")
		} else {
			f.From = &from
		}
	}
	if raw := c.Query("to"); raw != "" {
		to, err := timezone.ParseDate(raw, h.loc)
		if err != nil {
			errs.Add("to", "La fecha no es válida")
		} else {
			end := to.AddDate(0, 0, 1)
			f.To = &end
		}
	}

	if f.From != nil && f.To != nil && !f.From.Before(*f.To) {
		errs.Add("from", "La fecha inicial no puede ser posterior a la final")
	}

	return f, errs.Err()
}
