package handler

import (
	"net/http"

	"minegocio/internal/dto"
	"minegocio/internal/service"

	"github.com/gin-gonic/gin"
)

type CreditsHandler struct{ svc *service.LedgerService }

func NewCreditsHandler(svc *service.LedgerService) *CreditsHandler {
	return &CreditsHandler{svc: svc}
}

// Create godoc
// @Summary Registra un fiado
// @Tags fiados
// @Accept json
// @Produce json
// @Param body body dto.CreateCreditRequest true "Cliente y monto"
// @Success 201 {object} dto.CreditResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/credits [post]
func (h *CreditsHandler) Create(c *gin.Context) {
	var req dto.CreateCreditRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateCredit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CreditsHandler) List(c *gin.Context) {
	var filter dto.LedgerFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListCredits(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddPayment godoc
// @Summary Abona un fiado
// @Tags fiados
// @Accept json
// @Produce json
// @Param id path string true "ID del fiado"
// @Param body body dto.LedgerPaymentRequest true "Monto del abono"
// @Success 200 {object} dto.CreditResponse
// @Router /v1/credits/{id}/payments [post]
func (h *CreditsHandler) AddPayment(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.LedgerPaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddCreditPayment(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CreditsHandler) Payments(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.CreditPayments(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
