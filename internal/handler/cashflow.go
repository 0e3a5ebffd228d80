package handler

import (
	"net/http"

	"minegocio/internal/dto"
	"minegocio/internal/service"

	"github.com/gin-gonic/gin"
)

// CashflowHandler exposes outflows, adjustments and paid orders. The
// listing endpoints default to the current day when no window is given.
type CashflowHandler struct{ svc *service.CashflowService }

func NewCashflowHandler(svc *service.CashflowService) *CashflowHandler {
	return &CashflowHandler{svc: svc}
}

func (h *CashflowHandler) CreateOutflow(c *gin.Context) {
	var req dto.OutflowRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateOutflow(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CashflowHandler) ListOutflows(c *gin.Context) {
	var filter dto.PeriodFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListOutflows(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CashflowHandler) CreateAdjustment(c *gin.Context) {
	var req dto.AdjustmentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateAdjustment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CashflowHandler) ListAdjustments(c *gin.Context) {
	var filter dto.PeriodFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListAdjustments(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CashflowHandler) CreatePaidOrder(c *gin.Context) {
	var req dto.PaidOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreatePaidOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CashflowHandler) ListPaidOrders(c *gin.Context) {
	var filter dto.PeriodFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListPaidOrders(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CashflowHandler) DeletePaidOrder(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeletePaidOrder(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
