package dto

// ─── Requests ────────────────────────────────────────────────────────────────

type CreateCreditRequest struct {
	CustomerID  string  `json:"customer_id" validate:"required,uuid"`
	Amount      int64   `json:"amount"      validate:"required,gt=0"`
	Reference   *string `json:"reference"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

type CreateDebtRequest struct {
	CreditorName string  `json:"creditor_name" validate:"required"`
	Amount       int64   `json:"amount"        validate:"required,gt=0"`
	Description  *string `json:"description"`
	DueDate      *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

// LedgerPaymentRequest amortizes a credit or debt. Amounts are applied
// by unconditional subtraction: overpayment drives the balance
// negative and does not re-open a closed record.
type LedgerPaymentRequest struct {
	Amount int64   `json:"amount" validate:"required,gt=0"`
	Method *string `json:"method"`
	Note   *string `json:"note"`
}

// LedgerFilter is bound from the query string of the listing endpoints.
type LedgerFilter struct {
	Q   string `form:"q"`   // substring over party / reference / description
	All bool   `form:"all"` // include closed records
}

// ─── Responses ───────────────────────────────────────────────────────────────

type CreditResponse struct {
	ID           string  `json:"id"`
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	Reference    *string `json:"reference,omitempty"`
	Description  *string `json:"description,omitempty"`
	Amount       int64   `json:"amount"`
	Balance      int64   `json:"balance"`
	Closed       bool    `json:"closed"`
	DueDate      *string `json:"due_date,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type DebtResponse struct {
	ID           string  `json:"id"`
	CreditorName string  `json:"creditor_name"`
	Description  *string `json:"description,omitempty"`
	Amount       int64   `json:"amount"`
	Balance      int64   `json:"balance"`
	Closed       bool    `json:"closed"`
	DueDate      *string `json:"due_date,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type LedgerPaymentResponse struct {
	ID        string  `json:"id"`
	Amount    int64   `json:"amount"`
	Method    *string `json:"method,omitempty"`
	Note      *string `json:"note,omitempty"`
	CreatedAt string  `json:"created_at"`
}
