package handler

import (
	"net/http"
	"strconv"

	"minegocio/internal/dto"
	"minegocio/internal/infra"
	"minegocio/internal/service"

	"github.com/gin-gonic/gin"
)

type ClosureHandler struct{ svc *service.ClosureService }

func NewClosureHandler(svc *service.ClosureService) *ClosureHandler {
	return &ClosureHandler{svc: svc}
}

// Summary godoc
// @Summary Resumen de caja para una ventana, sin persistir nada
// @Tags cierre
// @Produce json
// @Param start query string true "Inicio (YYYY-MM-DD HH:MM:SS)"
// @Param end query string true "Fin (YYYY-MM-DD HH:MM:SS)"
// @Param opening_cash query int false "Caja inicial en centavos"
// @Success 200 {object} dto.ClosureSummary
// @Failure 400 {object} apierror.APIError
// @Router /v1/closure/summary [get]
func (h *ClosureHandler) Summary(c *gin.Context) {
	var req dto.ClosureWindowRequest
	if !bindQuery(c, &req) {
		return
	}
	resp, err := h.svc.Summary(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Register godoc
// @Summary Registra el cierre de caja contra el conteo fisico
// @Tags cierre
// @Accept json
// @Produce json
// @Param body body dto.RegisterClosureRequest true "Ventana, caja inicial y conteo"
// @Success 201 {object} dto.ClosureResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/closure [post]
func (h *ClosureHandler) Register(c *gin.Context) {
	var req dto.RegisterClosureRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ClosureHandler) Latest(c *gin.Context) {
	resp, err := h.svc.Latest(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClosureHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	if limit < 1 || limit > 365 {
		limit = 30
	}
	resp, err := h.svc.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClosureHandler) Get(c *gin.Context) {
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

// ExportCSV streams the window summary as a CSV download.
func (h *ClosureHandler) ExportCSV(c *gin.Context) {
	var req dto.ClosureWindowRequest
	if !bindQuery(c, &req) {
		return
	}
	summary, err := h.svc.Summary(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	data, err := infra.ClosureSummaryCSV(*summary)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=cierre.csv")
	c.Data(http.StatusOK, "text/csv", data)
}
