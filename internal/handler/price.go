package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"minegocio/internal/dto"
	"minegocio/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const priceCacheTTL = 4 * time.Hour

// PriceHandler serves the public price check endpoint. Read-only, no
// side effects; a nil redis client simply disables the cache.
type PriceHandler struct {
	catalog *service.CatalogService
	rdb     *redis.Client
}

func NewPriceHandler(catalog *service.CatalogService, rdb *redis.Client) *PriceHandler {
	return &PriceHandler{catalog: catalog, rdb: rdb}
}

// GetByCode godoc
// @Summary Consulta de precio por codigo (sin autenticacion)
// @Tags precio
// @Produce json
// @Param code path string true "Codigo de producto"
// @Success 200 {object} dto.PriceLookupResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/price/{code} [get]
func (h *PriceHandler) GetByCode(c *gin.Context) {
	code := c.Param("code")
	ctx := c.Request.Context()
	cacheKey := service.PriceCacheKey(code)

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.PriceLookupResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	resp, err := h.catalog.GetByCode(ctx, code)
	if err != nil {
		respondError(c, err)
		return
	}

	// Populate cache best effort, ignore errors
	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, priceCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}
