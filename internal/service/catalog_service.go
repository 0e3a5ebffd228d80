package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"minegocio/internal/dto"
	"minegocio/internal/model"
	"minegocio/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PriceCacheKey is the redis key under which the price lookup for a
// product code is cached.
func PriceCacheKey(code string) string { return "price:" + code }

type CatalogService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	invLog     repository.InventoryLogRepository
	cache      *redis.Client
}

// NewCatalogService accepts a nil cache client; invalidation then
// becomes a no-op.
func NewCatalogService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	invLog repository.InventoryLogRepository,
	cache *redis.Client,
) *CatalogService {
	return &CatalogService{products: products, categories: categories, invLog: invLog, cache: cache}
}

// invalidatePrice drops the cached price lookup for a code so the next
// check reads the fresh row. Best effort.
func (s *CatalogService) invalidatePrice(ctx context.Context, code string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, PriceCacheKey(code)).Err(); err != nil {
		log.Warn().Err(err).Str("code", code).Msg("no se pudo invalidar el cache de precio")
	}
}

func (s *CatalogService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	var code string
	if req.Code != nil && *req.Code != "" {
		code = strings.TrimSpace(*req.Code)
		exists, err := s.products.CodeExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDuplicateCode
		}
	} else {
		generated, err := s.generateUniqueCode(ctx)
		if err != nil {
			return nil, err
		}
		code = generated
	}

	categoryID, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	p := &model.Product{
		Code:       code,
		Name:       req.Name,
		Price:      req.Price,
		Stock:      req.Stock,
		CategoryID: categoryID,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := productToResponse(p)
	return &resp, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	categoryID, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	p.Name = req.Name
	p.Price = req.Price
	p.CategoryID = categoryID
	p.Category = nil
	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidatePrice(ctx, p.Code)
	resp := productToResponse(p)
	return &resp, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	resp := productToResponse(p)
	return &resp, nil
}

// GetByCode backs the price-check lookup on the sales floor.
func (s *CatalogService) GetByCode(ctx context.Context, code string) (*dto.PriceLookupResponse, error) {
	p, err := s.products.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	resp := &dto.PriceLookupResponse{
		Code:  p.Code,
		Name:  p.Name,
		Price: p.Price,
		Stock: p.Stock,
	}
	if p.Category != nil {
		resp.CategoryName = p.Category.Name
	}
	return resp, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	products, total, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductListResponse{
		Data:  make([]dto.ProductResponse, 0, len(products)),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	for i := range products {
		resp.Data = append(resp.Data, productToResponse(&products[i]))
	}
	return resp, nil
}

// DeleteProduct refuses while historical sale lines still reference the
// product; deactivating by price or recoding is the supported path.
func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	referenced, err := s.products.ReferencedBySaleItems(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return ErrProductReferenced
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidatePrice(ctx, p.Code)
	return nil
}

// AdjustStock applies a manual delta and records it in the inventory
// log, both inside one transaction.
func (s *CatalogService) AdjustStock(ctx context.Context, id uuid.UUID, req dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	err = runTx(ctx, s.products.DB(), func(tx *gorm.DB) error {
		if err := s.products.UpdateStockTx(tx, id, req.Delta); err != nil {
			return err
		}
		pid := p.ID
		return s.invLog.CreateTx(tx, &model.InventoryLog{
			ProductID:   &pid,
			ProductCode: p.Code,
			ProductName: p.Name,
			Change:      req.Delta,
			Reason:      req.Reason,
			CreatedAt:   time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.invalidatePrice(ctx, p.Code)

	p.Stock += req.Delta
	log.Info().
		Str("product_id", id.String()).
		Int("delta", req.Delta).
		Int("stock", p.Stock).
		Msg("ajuste de stock")

	resp := productToResponse(p)
	return &resp, nil
}

func (s *CatalogService) StockHistory(ctx context.Context, productID uuid.UUID, limit int) ([]dto.InventoryLogEntry, error) {
	entries, err := s.invLog.ListForProduct(ctx, productID, limit)
	if err != nil {
		return nil, err
	}
	return inventoryLogToEntries(entries), nil
}

// RecentStockMovements lists the latest manual adjustments across the
// whole catalog.
func (s *CatalogService) RecentStockMovements(ctx context.Context, limit int) ([]dto.InventoryLogEntry, error) {
	entries, err := s.invLog.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return inventoryLogToEntries(entries), nil
}

func inventoryLogToEntries(entries []model.InventoryLog) []dto.InventoryLogEntry {
	out := make([]dto.InventoryLogEntry, 0, len(entries))
	for _, e := range entries {
		entry := dto.InventoryLogEntry{
			ID:          e.ID.String(),
			ProductCode: e.ProductCode,
			ProductName: e.ProductName,
			Change:      e.Change,
			Reason:      e.Reason,
			CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		}
		if e.ProductID != nil {
			id := e.ProductID.String()
			entry.ProductID = &id
		}
		out = append(out, entry)
	}
	return out
}

func (s *CatalogService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	exists, err := s.categories.NameExists(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateCategory
	}
	c := &model.Category{Name: req.Name}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: c.ID.String(), Name: c.Name}, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, dto.CategoryResponse{ID: c.ID.String(), Name: c.Name})
	}
	return out, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return s.categories.Delete(ctx, id)
}

// generateUniqueCode derives an 8-char uppercase code from a fresh UUID
// and retries on the unlikely collision.
func (s *CatalogService) generateUniqueCode(ctx context.Context) (string, error) {
	for i := 0; i < 10; i++ {
		raw := strings.ReplaceAll(uuid.NewString(), "-", "")
		code := strings.ToUpper(raw[:8])
		exists, err := s.products.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.New("no se pudo generar un codigo unico")
}

func (s *CatalogService) resolveCategory(ctx context.Context, raw *string) (*uuid.UUID, error) {
	id := parseOptionalUUID(raw)
	if id == nil {
		return nil, nil
	}
	if _, err := s.categories.FindByID(ctx, *id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return id, nil
}

func productToResponse(p *model.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:        p.ID.String(),
		Code:      p.Code,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
	if p.CategoryID != nil {
		id := p.CategoryID.String()
		resp.CategoryID = &id
	}
	if p.Category != nil {
		resp.CategoryName = p.Category.Name
	}
	return resp
}
