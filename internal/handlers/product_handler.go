package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-backoffice/internal/domain/product"
	"github.com/BruksfildServices01/salon-backoffice/internal/dto"
	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/httpresp"
	"github.com/BruksfildServices01/salon-backoffice/internal/media"
	ucProduct "github.com/BruksfildServices01/salon-backoffice/internal/usecase/product"
)

type ProductHandler struct {
	manage *ucProduct.ManageProducts
	query  *ucProduct.QueryProducts
	image  *ucProduct.UploadImage
}

func NewProductHandler(
	manage *ucProduct.ManageProducts,
	query *ucProduct.QueryProducts,
	image *ucProduct.UploadImage,
) *ProductHandler {
	return &ProductHandler{manage: manage, query: query, image: image}
}

// ------------------------------------------------------
// Queries
// ------------------------------------------------------

func (h *ProductHandler) List(c *gin.Context) {
	active, err := queryBool(c, "activo")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	products, err := h.query.List(c.Request.Context(), domain.Filter{
		Search:   strings.TrimSpace(c.Query("buscar")),
		Category: strings.TrimSpace(c.Query("categoria")),
		Active:   active,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewProductList(products))
}

func (h *ProductHandler) LowStock(c *gin.Context) {
	products, err := h.query.LowStock(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewProductList(products))
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	p, err := h.query.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewProductResponse(p))
}

// ------------------------------------------------------
// Writes
// ------------------------------------------------------

func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.manage.Create(c.Request.Context(), req.ToModel())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, dto.NewProductResponse(p))
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.ProductRequest
	if !bindJSON(c, &req) || !sameID(c, id, req.ID, "El ID no coincide") {
		return
	}

	p, err := h.manage.Update(c.Request.Context(), id, req.ToModel())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.MessageWith(c, "Producto actualizado", "producto", dto.NewProductResponse(p))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.manage.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, "Producto eliminado exitosamente")
}

// AdjustStock takes a bare signed integer as the body, e.g. `-3`.
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var delta int
	if !bindJSON(c, &delta) {
		return
	}

	p, err := h.manage.AdjustStock(c.Request.Context(), id, delta)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.MessageWith(c, "Stock actualizado", "producto", dto.NewProductResponse(p))
}

// UploadImage reads the multipart field "imagen".
func (h *ProductHandler) UploadImage(c *gin.Context) {
	if !h.image.Enabled() {
		httperr.Unavailable(c, "storage_disabled", "El almacenamiento de imágenes no está configurado")
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, media.MaxUploadBytes+1<<20)
	file, _, err := c.Request.FormFile("imagen")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.Write(c, http.StatusRequestEntityTooLarge, "image_too_large", "La imagen supera el tamaño permitido")
			return
		}
		httperr.BadRequest(c, "missing_image", "Debe adjuntar una imagen en el campo imagen")
		return
	}
	defer file.Close()

	p, err := h.image.Execute(c.Request.Context(), id, file)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.MessageWith(c, "Imagen actualizada", "producto", dto.NewProductResponse(p))
}
