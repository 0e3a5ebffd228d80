package handler

import (
	"net/http"

	"minegocio/internal/apierror"
	"minegocio/internal/dto"
	"minegocio/internal/service"

	"github.com/gin-gonic/gin"
)

// CartHandler operates on the in-memory cart of one register. When the
// client sends a product_id the line is enriched from the catalog, so
// price and names always come from the source of truth; manual lines go
// in as declared.
type CartHandler struct {
	carts   *service.CartService
	catalog *service.CatalogService
}

func NewCartHandler(carts *service.CartService, catalog *service.CatalogService) *CartHandler {
	return &CartHandler{carts: carts, catalog: catalog}
}

func (h *CartHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.carts.Get(c.Param("register")))
}

// Add godoc
// @Summary Agrega o fusiona una linea del carrito
// @Tags carrito
// @Accept json
// @Produce json
// @Param register path string true "ID de caja"
// @Param body body dto.CartAddRequest true "Linea"
// @Success 200 {object} dto.CartResponse
// @Router /v1/cart/{register}/items [post]
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.CartAddRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if req.ProductID != nil {
		id, ok := parseBodyUUID(c, *req.ProductID)
		if !ok {
			return
		}
		p, err := h.catalog.GetProduct(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		req.Code = p.Code
		req.Name = p.Name
		req.Price = p.Price
		req.CategoryID = p.CategoryID
		req.CategoryName = p.CategoryName
	}

	resp, err := h.carts.Add(c.Param("register"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) SetQty(c *gin.Context) {
	var req struct {
		Qty int `json:"qty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido"))
		return
	}
	c.JSON(http.StatusOK, h.carts.SetQty(c.Param("register"), c.Param("code"), req.Qty))
}

func (h *CartHandler) Remove(c *gin.Context) {
	c.JSON(http.StatusOK, h.carts.Remove(c.Param("register"), c.Param("code")))
}

func (h *CartHandler) Clear(c *gin.Context) {
	h.carts.Clear(c.Param("register"))
	c.Status(http.StatusNoContent)
}
