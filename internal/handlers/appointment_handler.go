package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-backoffice/internal/dto"
	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/httpresp"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
	"github.com/BruksfildServices01/salon-backoffice/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/salon-backoffice/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentUseCases struct {
	Create   *ucAppointment.CreateAppointment
	Update   *ucAppointment.UpdateAppointment
	Complete *ucAppointment.CompleteAppointment
	Confirm  *ucAppointment.ChangeStatus
	Cancel   *ucAppointment.ChangeStatus
	Delete   *ucAppointment.DeleteAppointment
	Query    *ucAppointment.ListAppointments
}

type AppointmentHandler struct {
	uc  AppointmentUseCases
	loc *time.Location
}

func NewAppointmentHandler(uc AppointmentUseCases, loc *time.Location) *AppointmentHandler {
	return &AppointmentHandler{uc: uc, loc: loc}
}

// ======================================================
// QUERIES
// ======================================================

// List accepts ?fecha=YYYY-MM-DD&clienteId=&servicioId=&estado=.
func (h *AppointmentHandler) List(c *gin.Context) {
	f, err := h.filter(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	apps, err := h.uc.Query.Execute(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewAppointmentList(apps, h.loc))
}

func (h *AppointmentHandler) filter(c *gin.Context) (domain.Filter, error) {
	var f domain.Filter
	errs := httperr.FieldErrors{}

	if raw := c.Query("fecha"); raw != "" {
		d, err := timezone.ParseDate(raw, h.loc)
		if err != nil {
			errs.Add("fecha", "La fecha no es válida")
		} else {
			f.Date = &d
		}
	}

	var err error
	if f.ClientID, err = queryUint(c, "clienteId"); err != nil {
		errs.Add("clienteId", "Valor no válido")
	}
	if f.ServiceID, err = queryUint(c, "servicioId"); err != nil {
		errs.Add("servicioId", "Valor no válido")
	}

	if raw := c.Query("estado"); raw != "" {
		st, ok := domain.ParseStatus(raw)
		if !ok {
			errs.Add("estado", "Estado no válido")
		}
		f.Status = st
	}

	return f, errs.Err()
}

func (h *AppointmentHandler) Today(c *gin.Context) {
	apps, err := h.uc.Query.Today(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewAppointmentList(apps, h.loc))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.uc.Query.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewAppointmentResponse(ap, h.loc))
}

// ======================================================
// WRITES
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.AppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.uc.Create.Execute(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, dto.NewAppointmentResponse(ap, h.loc))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.AppointmentRequest
	if !bindJSON(c, &req) || !sameID(c, id, req.ID, "ID no coincide") {
		return
	}

	ap, err := h.uc.Update.Execute(c.Request.Context(), id, req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.MessageWith(c, "Cita actualizada", "cita", dto.NewAppointmentResponse(ap, h.loc))
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.statusChange(c, h.uc.Complete.Execute, "Cita marcada como completada")
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.statusChange(c, h.uc.Confirm.Execute, "Cita confirmada")
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.statusChange(c, h.uc.Cancel.Execute, "Cita cancelada")
}

func (h *AppointmentHandler) statusChange(
	c *gin.Context,
	run func(context.Context, uint) (*models.Appointment, error),
	message string,
) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := run(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.MessageWith(c, message, "cita", dto.NewAppointmentResponse(ap, h.loc))
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.uc.Delete.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Cita eliminada exitosamente")
}
