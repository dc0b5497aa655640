package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/catalog"
	"github.com/BruksfildServices01/salon-backoffice/internal/dto"
	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/httpresp"
	ucCatalog "github.com/BruksfildServices01/salon-backoffice/internal/usecase/catalog"
)

type ServiceHandler struct {
	manage *ucCatalog.ManageServices
	query  *ucCatalog.QueryServices
}

func NewServiceHandler(manage *ucCatalog.ManageServices, query *ucCatalog.QueryServices) *ServiceHandler {
	return &ServiceHandler{manage: manage, query: query}
}

// List accepts ?buscar&categoria&precioMin&precioMax&activo.
func (h *ServiceHandler) List(c *gin.Context) {
	f, err := serviceFilter(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	services, err := h.query.List(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewServiceList(services))
}

func serviceFilter(c *gin.Context) (domain.Filter, error) {
	f := domain.Filter{
		Search:   strings.TrimSpace(c.Query("buscar")),
		Category: strings.TrimSpace(c.Query("categoria")),
	}
	errs := httperr.FieldErrors{}

	for key, dst := range map[string]**decimal.Decimal{
		"precioMin": &f.MinPrice,
		"precioMax": &f.MaxPrice,
	} {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			errs.Add(key, "Valor no válido")
			continue
		}
		*dst = &d
	}

	active, err := queryBool(c, "activo")
	if err != nil {
		errs.Add("activo", "Valor no válido")
	}
	f.Active = active

	return f, errs.Err()
}

func (h *ServiceHandler) ByCategory(c *gin.Context) {
	services, err := h.query.ByCategory(c.Request.Context(), c.Param("categoria"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewServiceList(services))
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s, err := h.query.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewServiceResponse(s))
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.ServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.manage.Create(c.Request.Context(), req.ToModel())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, dto.NewServiceResponse(s))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.ServiceRequest
	if !bindJSON(c, &req) || !sameID(c, id, req.ID, "El ID no coincide") {
		return
	}

	s, err := h.manage.Update(c.Request.Context(), id, req.ToModel())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.MessageWith(c, "Servicio actualizado", "servicio", dto.NewServiceResponse(s))
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.manage.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Servicio eliminado exitosamente")
}
