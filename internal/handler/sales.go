package handler

import (
	"net/http"

	"minegocio/internal/dto"
	"minegocio/internal/infra"
	"minegocio/internal/service"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct {
	svc      *service.SaleService
	renderer *infra.ReceiptRenderer
}

func NewSalesHandler(svc *service.SaleService, renderer *infra.ReceiptRenderer) *SalesHandler {
	return &SalesHandler{svc: svc, renderer: renderer}
}

// Checkout godoc
// @Summary Finaliza el carrito de una caja como venta
// @Tags ventas
// @Accept json
// @Produce json
// @Param body body dto.CheckoutRequest true "Pagos y politica de faltante"
// @Success 201 {object} dto.CheckoutResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/checkout [post]
func (h *SalesHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Checkout(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SalesHandler) List(c *gin.Context) {
	var filter dto.SaleListFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListRecent(c.Request.Context(), filter.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SalesHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Receipt godoc
// @Summary Ticket de una venta, en PDF o texto plano
// @Tags ventas
// @Produce application/pdf
// @Param id path string true "ID de la venta"
// @Param format query string false "pdf (default) o text"
// @Success 200
// @Failure 404 {object} apierror.APIError
// @Router /v1/sales/{id}/receipt [get]
func (h *SalesHandler) Receipt(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	receipt, err := h.svc.Receipt(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if c.DefaultQuery("format", "pdf") == "text" {
		c.String(http.StatusOK, h.renderer.RenderText(*receipt))
		return
	}

	pdf, err := h.renderer.RenderPDF(*receipt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", "inline; filename=ticket-"+receipt.SaleID+".pdf")
	c.Data(http.StatusOK, "application/pdf", pdf)
}
