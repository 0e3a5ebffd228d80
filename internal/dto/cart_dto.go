package dto

// CartAddRequest adds one line to a register's cart. ProductID is nil
// for manual (calculator-mode) lines, which never touch stock.
type CartAddRequest struct {
	ProductID    *string `json:"product_id" validate:"omitempty,uuid"`
	Code         string  `json:"code"  validate:"required"`
	Name         string  `json:"name"  validate:"required"`
	Price        int64   `json:"price" validate:"min=0"`
	Qty          int     `json:"qty"   validate:"required"`
	CategoryID   *string `json:"category_id" validate:"omitempty,uuid"`
	CategoryName string  `json:"category_name"`
}

// CartLine is one display row, in insertion order.
type CartLine struct {
	Qty          int    `json:"qty"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	CategoryName string `json:"category_name"`
	Price        int64  `json:"price"`
	Subtotal     int64  `json:"subtotal"`
}

type CartResponse struct {
	Lines []CartLine `json:"lines"`
	Total int64      `json:"total"`
}
