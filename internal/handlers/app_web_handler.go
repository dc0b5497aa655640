package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-backoffice/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/salon-backoffice/internal/usecase/appointment"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded pages for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

type AppWebHandler struct {
	agenda *ucAppointment.ListAppointments
	clock  timezone.Clock
}

func NewAppWebHandler(agenda *ucAppointment.ListAppointments, clock timezone.Clock) *AppWebHandler {
	return &AppWebHandler{agenda: agenda, clock: clock}
}

// Agenda renders one day, today unless ?fecha=YYYY-MM-DD is given.
func (h *AppWebHandler) Agenda(c *gin.Context) {
	day := timezone.Today(h.clock)
	if raw := c.Query("fecha"); raw != "" {
		d, err := timezone.ParseDate(raw, h.clock.Location())
		if err != nil {
			c.HTML(http.StatusBadRequest, "base", gin.H{
				"Page":  "agenda",
				"Error": "La fecha no es válida",
			})
			return
		}
		day = d
	}

	entries, err := h.agenda.Agenda(c.Request.Context(), day)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "base", gin.H{
			"Page":  "agenda",
			"Error": "No se pudo cargar la agenda",
		})
		return
	}

	c.HTML(http.StatusOK, "base", gin.H{
		"Page":    "agenda",
		"Fecha":   timezone.FormatDate(day),
		"Entries": entries,
	})
}
