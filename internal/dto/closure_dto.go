package dto

import "github.com/shopspring/decimal"

// ClosureWindowRequest bounds a summary computation. Start/End accept
// "2006-01-02 15:04:05" (the register's native format) or RFC 3339;
// both bounds are inclusive.
type ClosureWindowRequest struct {
	Start       string `form:"start" json:"start" validate:"required"`
	End         string `form:"end"   json:"end"   validate:"required"`
	OpeningCash int64  `form:"opening_cash" json:"opening_cash"`
}

// RegisterClosureRequest persists a closure: the computed summary plus
// the physical count declared by the user.
type RegisterClosureRequest struct {
	Start       string `json:"start" validate:"required"`
	End         string `json:"end"   validate:"required"`
	OpeningCash int64  `json:"opening_cash"`
	CashCounted int64  `json:"cash_counted"`
	User        string `json:"user"`
	Notes       string `json:"notes"`
}

type MethodTotal struct {
	Method string `json:"method"`
	Total  int64  `json:"total"`
	Count  int64  `json:"count"`
}

// ClosureSummary is the pure aggregation over the window. Identical
// inputs always produce identical figures.
type ClosureSummary struct {
	Start            string        `json:"start"`
	End              string        `json:"end"`
	TotalSales       int64         `json:"total_sales"`
	PaymentsByMethod []MethodTotal `json:"payments_by_method"`
	CashIn           int64         `json:"cash_in"`
	TransferIn       int64         `json:"transfer_in"`
	OtherIn          int64         `json:"other_in"`
	PaidOrdersTotal  int64         `json:"paid_orders_total"`
	OutflowsTotal    int64         `json:"outflows_total"`
	AdjustmentsTotal int64         `json:"adjustments_total"`
	ExpensesTotal    int64         `json:"expenses_total"`
	CreditsTotal     int64         `json:"credits_total"`
	DebtsTotal       int64         `json:"debts_total"`
	OpeningCash      int64         `json:"opening_cash"`
	NetCash          int64         `json:"net_cash"`
}

// DeviationResponse classifies counted-vs-expected cash.
// Classification: normal (≤1%), advertencia (≤5%), critico (>5%).
type DeviationResponse struct {
	Amount         int64           `json:"amount"`
	Percentage     decimal.Decimal `json:"percentage"`
	Classification string          `json:"classification"`
}

type ClosureResponse struct {
	ID           string            `json:"id"`
	User         string            `json:"user"`
	OpenedAt     string            `json:"opened_at"`
	ClosedAt     string            `json:"closed_at"`
	OpeningCash  int64             `json:"opening_cash"`
	CashInSales  int64             `json:"cash_in_sales"`
	CashExpenses int64             `json:"cash_expenses"`
	CashCounted  int64             `json:"cash_counted"`
	CashDiff     int64             `json:"cash_diff"`
	TotalSales   int64             `json:"total_sales"`
	Payments     map[string]int64  `json:"payments_summary"`
	Deviation    DeviationResponse `json:"deviation"`
	Notes        string            `json:"notes,omitempty"`
	CreatedAt    string            `json:"created_at"`
}
