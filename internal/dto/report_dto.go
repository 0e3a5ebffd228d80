package dto

// SalesReportRequest bounds the statistics window. Same formats the
// closure window accepts; top caps the product ranking length.
type SalesReportRequest struct {
	Start string `form:"start" validate:"required"`
	End   string `form:"end"   validate:"required"`
	Top   int    `form:"top,default=5"`
}

// TopProduct is one row of the product ranking, aggregated over the
// snapshotted sale lines so renamed or deleted products still report.
type TopProduct struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Units  int64  `json:"units"`
	Amount int64  `json:"amount"`
}

type SalesReport struct {
	Start            string        `json:"start"`
	End              string        `json:"end"`
	TotalSales       int64         `json:"total_sales"`
	PaymentsByMethod []MethodTotal `json:"payments_by_method"`
	TopProducts      []TopProduct  `json:"top_products"`
	CreditsInWindow  int64         `json:"credits_in_window"`
	DebtsInWindow    int64         `json:"debts_in_window"`
	OpenCredits      int64         `json:"open_credits"`
	OpenDebts        int64         `json:"open_debts"`
}
