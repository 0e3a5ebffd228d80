package dto

// ─── Checkout ────────────────────────────────────────────────────────────────

// PaymentLine is one user-proposed payment. Method is free text; there
// is deliberately no closed method catalog.
type PaymentLine struct {
	Method  string  `json:"method" validate:"required"`
	Amount  int64   `json:"amount" validate:"required,gt=0"`
	Details *string `json:"details"`
}

// ShortfallPolicy values for CheckoutRequest.OnShortfall.
const (
	ShortfallReject = "reject"
	ShortfallCredit = "credit"
)

// CheckoutRequest finalizes the cart of RegisterID. When ExactCash is
// set and the lines fall short of the total, a synthetic cash line for
// the remainder is appended before evaluation. OnShortfall decides what
// happens when paid < total: reject everything, or commit the sale and
// open a credit for CustomerID covering the difference.
type CheckoutRequest struct {
	RegisterID  string        `json:"register_id" validate:"required"`
	Payments    []PaymentLine `json:"payments"    validate:"dive"`
	ExactCash   bool          `json:"exact_cash"`
	OnShortfall string        `json:"on_shortfall" validate:"omitempty,oneof=reject credit"`
	CustomerID  *string       `json:"customer_id"  validate:"omitempty,uuid"`
}

type CheckoutResponse struct {
	SaleID string `json:"sale_id"`
	Total  int64  `json:"total"`
	Paid   int64  `json:"paid"`
	// Change is informational only, never persisted as a ledger entry.
	Change int64 `json:"change"`
	// Credit fields are set only on the shortfall-to-credit path.
	CreditID     *string `json:"credit_id,omitempty"`
	CreditAmount int64   `json:"credit_amount,omitempty"`
	// StockWarnings lists items the sale drove to negative stock.
	StockWarnings []string `json:"stock_warnings,omitempty"`
	Receipt       Receipt  `json:"receipt"`
}

// ─── Receipt (normalized shape for the renderer collaborators) ───────────────

type ReceiptLine struct {
	ProductCode string `json:"product_code"`
	ProductName string `json:"product_name"`
	Qty         int    `json:"qty"`
	Price       int64  `json:"price"`
	Subtotal    int64  `json:"subtotal"`
}

type Receipt struct {
	SaleID      string        `json:"sale_id"`
	CompanyName string        `json:"company_name"`
	CreatedAt   string        `json:"created_at"`
	Lines       []ReceiptLine `json:"lines"`
	Total       int64         `json:"total"`
	Received    *int64        `json:"received,omitempty"`
	Change      *int64        `json:"change,omitempty"`
}

// ─── Sale listing ────────────────────────────────────────────────────────────

type SaleListFilter struct {
	Limit int `form:"limit,default=100" validate:"min=1,max=500"`
}

type SalePaymentResponse struct {
	Method  string  `json:"method"`
	Amount  int64   `json:"amount"`
	Details *string `json:"details,omitempty"`
}

type SaleItemResponse struct {
	ProductCode  string `json:"product_code"`
	ProductName  string `json:"product_name"`
	CategoryName string `json:"category_name"`
	Qty          int    `json:"qty"`
	Price        int64  `json:"price"`
	Subtotal     int64  `json:"subtotal"`
}

type SaleResponse struct {
	ID        string                `json:"id"`
	Total     int64                 `json:"total"`
	CreatedAt string                `json:"created_at"`
	Items     []SaleItemResponse    `json:"items,omitempty"`
	Payments  []SalePaymentResponse `json:"payments,omitempty"`
}
