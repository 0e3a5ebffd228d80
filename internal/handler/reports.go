package handler

import (
	"net/http"

	"minegocio/internal/dto"
	"minegocio/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc *service.ReportService }

func NewReportsHandler(svc *service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// Sales godoc
// @Summary Estadisticas de ventas para una ventana
// @Tags reportes
// @Produce json
// @Param start query string true "Inicio (YYYY-MM-DD HH:MM:SS)"
// @Param end query string true "Fin (YYYY-MM-DD HH:MM:SS)"
// @Param top query int false "Cantidad de productos en el ranking"
// @Success 200 {object} dto.SalesReport
// @Failure 400 {object} apierror.APIError
// @Router /v1/reports/sales [get]
func (h *ReportsHandler) Sales(c *gin.Context) {
	var req dto.SalesReportRequest
	if !bindQuery(c, &req) {
		return
	}
	resp, err := h.svc.Sales(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
