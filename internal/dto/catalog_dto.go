package dto

// ─── Products ────────────────────────────────────────────────────────────────

// ProductFilter is bound from the query string of GET /v1/products.
type ProductFilter struct {
	Q     string `form:"q"` // substring match on name or code
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=50" validate:"min=1,max=500"`
}

type CreateProductRequest struct {
	// Code is optional; an 8-char unique code is generated when omitted.
	Code       *string `json:"code"`
	Name       string  `json:"name"  validate:"required"`
	Price      int64   `json:"price" validate:"min=0"`
	Stock      int     `json:"stock"`
	CategoryID *string `json:"category_id" validate:"omitempty,uuid"`
}

type UpdateProductRequest struct {
	Name       string  `json:"name"  validate:"required"`
	Price      int64   `json:"price" validate:"min=0"`
	CategoryID *string `json:"category_id" validate:"omitempty,uuid"`
}

type ProductResponse struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Price        int64   `json:"price"`
	Stock        int     `json:"stock"`
	CategoryID   *string `json:"category_id"`
	CategoryName string  `json:"category_name,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

type AdjustStockRequest struct {
	Delta  int    `json:"delta" validate:"required"`
	Reason string `json:"reason"`
}

// PriceLookupResponse is the cached no-auth price check payload.
type PriceLookupResponse struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Price        int64  `json:"price"`
	Stock        int    `json:"stock"`
	CategoryName string `json:"category_name,omitempty"`
}

// ─── Categories ──────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ─── Inventory log ───────────────────────────────────────────────────────────

type InventoryLogEntry struct {
	ID          string  `json:"id"`
	ProductID   *string `json:"product_id"`
	ProductCode string  `json:"product_code"`
	ProductName string  `json:"product_name"`
	Change      int     `json:"change"`
	Reason      string  `json:"reason"`
	CreatedAt   string  `json:"created_at"`
}
