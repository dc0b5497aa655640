package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/client"
	"github.com/BruksfildServices01/salon-backoffice/internal/dto"
	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/httpresp"
	ucClient "github.com/BruksfildServices01/salon-backoffice/internal/usecase/client"
)

type ClientUseCases struct {
	Create *ucClient.CreateClient
	Update *ucClient.UpdateClient
	Delete *ucClient.DeleteClient
	Query  *ucClient.QueryClients
}

type ClientHandler struct {
	uc  ClientUseCases
	loc *time.Location
}

func NewClientHandler(uc ClientUseCases, loc *time.Location) *ClientHandler {
	return &ClientHandler{uc: uc, loc: loc}
}

// List accepts an optional ?buscar= over name, phone and email.
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.uc.Query.List(c.Request.Context(), domain.Filter{
		Search: strings.TrimSpace(c.Query("buscar")),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewClientList(clients))
}

func (h *ClientHandler) Search(c *gin.Context) {
	term := c.Query("termino")
	if term == "" {
		term = c.Query("nombre")
	}
	if strings.TrimSpace(term) == "" {
		httperr.BadRequest(c, "missing_term", "Debe proporcionar un termino de busqueda")
		return
	}

	clients, err := h.uc.Query.Search(c.Request.Context(), term)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewClientList(clients))
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	client, err := h.uc.Query.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewClientResponse(client))
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.ClientRequest
	if !bindJSON(c, &req) {
		return
	}

	model, err := req.ToModel(h.loc)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	client, err := h.uc.Create.Execute(c.Request.Context(), model)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, dto.NewClientResponse(client))
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.ClientRequest
	if !bindJSON(c, &req) || !sameID(c, id, req.ID, "El ID no coincide") {
		return
	}

	model, err := req.ToModel(h.loc)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	client, err := h.uc.Update.Execute(c.Request.Context(), id, model)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.MessageWith(c, "Cliente actualizado", "cliente", dto.NewClientResponse(client))
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.uc.Delete.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Cliente eliminado exitosamente")
}
