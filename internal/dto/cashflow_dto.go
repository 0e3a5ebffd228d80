package dto

type OutflowRequest struct {
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Description string `json:"description"`
}

type OutflowResponse struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

type AdjustmentRequest struct {
	Kind   string `json:"kind"`
	Note   string `json:"note"`
	Amount int64  `json:"amount" validate:"required,gt=0"`
	User   string `json:"user"`
}

type AdjustmentResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Note      string `json:"note"`
	Amount    int64  `json:"amount"`
	User      string `json:"user"`
	CreatedAt string `json:"created_at"`
}

type PaidOrderRequest struct {
	CustomerName string  `json:"customer_name" validate:"required"`
	Amount       int64   `json:"amount"        validate:"required,gt=0"`
	Note         *string `json:"note"`
}

type PaidOrderResponse struct {
	ID           string  `json:"id"`
	CustomerName string  `json:"customer_name"`
	Amount       int64   `json:"amount"`
	Note         *string `json:"note,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// PeriodFilter bounds the cash-flow listing endpoints. Same format the
// closure window uses.
type PeriodFilter struct {
	Start string `form:"start"`
	End   string `form:"end"`
}
