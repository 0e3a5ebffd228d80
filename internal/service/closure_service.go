package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"minegocio/internal/dto"
	"minegocio/internal/model"
	"minegocio/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Deviation classifications for the counted-vs-expected difference.
const (
	DeviationNormal   = "normal"
	DeviationWarning  = "advertencia"
	DeviationCritical = "critico"
)

var windowLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// ClosureService computes end-of-day cash reconciliation. Summary is a
// pure read: the same window and opening float always yield the same
// figures, no matter how often it runs. Register persists one immutable
// snapshot on top of that arithmetic.
type ClosureService struct {
	sales    repository.SaleRepository
	cashflow repository.CashflowRepository
	credits  repository.CreditRepository
	debts    repository.DebtRepository
	closures repository.ClosureRepository
}

func NewClosureService(
	sales repository.SaleRepository,
	cashflow repository.CashflowRepository,
	credits repository.CreditRepository,
	debts repository.DebtRepository,
	closures repository.ClosureRepository,
) *ClosureService {
	return &ClosureService{
		sales:    sales,
		cashflow: cashflow,
		credits:  credits,
		debts:    debts,
		closures: closures,
	}
}

// ParseWindow accepts the register's native "2006-01-02 15:04:05"
// format, RFC 3339, or a bare date. A bare end date extends to the end
// of that day. Both bounds are inclusive.
func ParseWindow(start, end string) (time.Time, time.Time, error) {
	from, _, err := parseStamp(start)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	to, toLayout, err := parseStamp(end)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	if toLayout == "2006-01-02" {
		to = to.Add(24*time.Hour - time.Second)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return from, to, nil
}

func parseStamp(s string) (time.Time, string, error) {
	for _, layout := range windowLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, layout, nil
		}
	}
	return time.Time{}, "", ErrInvalidDateRange
}

// Summary aggregates the window without writing anything.
func (s *ClosureService) Summary(ctx context.Context, req dto.ClosureWindowRequest) (*dto.ClosureSummary, error) {
	from, to, err := ParseWindow(req.Start, req.End)
	if err != nil {
		return nil, err
	}

	totalSales, err := s.sales.TotalForPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	methods, err := s.sales.PaymentsSummaryForPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var cashIn, transferIn, otherIn int64
	for _, m := range methods {
		switch ClassifyMethod(m.Method) {
		case MethodCash:
			cashIn += m.Total
		case MethodTransfer:
			transferIn += m.Total
		default:
			otherIn += m.Total
		}
	}

	outflows, err := s.cashflow.SumOutflows(ctx, from, to)
	if err != nil {
		return nil, err
	}
	adjustments, err := s.cashflow.SumAdjustments(ctx, from, to)
	if err != nil {
		return nil, err
	}
	paidOrders, err := s.cashflow.SumPaidOrders(ctx, from, to)
	if err != nil {
		return nil, err
	}
	creditsTotal, err := s.credits.CreatedTotalForPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	debtsTotal, err := s.debts.CreatedTotalForPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	expenses := outflows + adjustments
	netCash := req.OpeningCash + cashIn - expenses - paidOrders

	return &dto.ClosureSummary{
		Start:            from.Format("2006-01-02 15:04:05"),
		End:              to.Format("2006-01-02 15:04:05"),
		TotalSales:       totalSales,
		PaymentsByMethod: methods,
		CashIn:           cashIn,
		TransferIn:       transferIn,
		OtherIn:          otherIn,
		PaidOrdersTotal:  paidOrders,
		OutflowsTotal:    outflows,
		AdjustmentsTotal: adjustments,
		ExpensesTotal:    expenses,
		CreditsTotal:     creditsTotal,
		DebtsTotal:       debtsTotal,
		OpeningCash:      req.OpeningCash,
		NetCash:          netCash,
	}, nil
}

// Register computes the summary, compares it against the physical
// count, and persists the closure snapshot.
func (s *ClosureService) Register(ctx context.Context, req dto.RegisterClosureRequest) (*dto.ClosureResponse, error) {
	summary, err := s.Summary(ctx, dto.ClosureWindowRequest{
		Start:       req.Start,
		End:         req.End,
		OpeningCash: req.OpeningCash,
	})
	if err != nil {
		return nil, err
	}
	from, to, err := ParseWindow(req.Start, req.End)
	if err != nil {
		return nil, err
	}

	payments := make(map[string]int64, len(summary.PaymentsByMethod))
	for _, m := range summary.PaymentsByMethod {
		payments[m.Method] = m.Total
	}
	raw, err := json.Marshal(payments)
	if err != nil {
		return nil, err
	}

	diff := req.CashCounted - summary.NetCash
	closure := &model.CashClosure{
		User:            req.User,
		OpenedAt:        from,
		ClosedAt:        to,
		OpeningCash:     req.OpeningCash,
		CashInSales:     summary.CashIn,
		CashExpenses:    summary.ExpensesTotal,
		CashCounted:     req.CashCounted,
		CashDiff:        diff,
		TotalSales:      summary.TotalSales,
		PaymentsSummary: string(raw),
		Notes:           req.Notes,
	}
	if err := s.closures.Create(ctx, closure); err != nil {
		return nil, err
	}

	log.Info().
		Str("closure_id", closure.ID.String()).
		Int64("net_cash", summary.NetCash).
		Int64("counted", req.CashCounted).
		Int64("diff", diff).
		Msg("cierre de caja registrado")

	resp := closureToResponse(closure, ClassifyDeviation(diff, summary.NetCash))
	return &resp, nil
}

func (s *ClosureService) Get(ctx context.Context, id uuid.UUID) (*dto.ClosureResponse, error) {
	c, err := s.closures.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClosureNotFound
		}
		return nil, err
	}
	resp := closureToResponse(c, ClassifyDeviation(c.CashDiff, c.CashCounted-c.CashDiff))
	return &resp, nil
}

func (s *ClosureService) Latest(ctx context.Context) (*dto.ClosureResponse, error) {
	c, err := s.closures.Latest(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClosureNotFound
		}
		return nil, err
	}
	resp := closureToResponse(c, ClassifyDeviation(c.CashDiff, c.CashCounted-c.CashDiff))
	return &resp, nil
}

func (s *ClosureService) List(ctx context.Context, limit int) ([]dto.ClosureResponse, error) {
	closures, err := s.closures.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClosureResponse, 0, len(closures))
	for i := range closures {
		c := &closures[i]
		out = append(out, closureToResponse(c, ClassifyDeviation(c.CashDiff, c.CashCounted-c.CashDiff)))
	}
	return out, nil
}

// ClassifyDeviation grades the counted-vs-expected difference as a
// percentage of expected cash: up to 1% is normal, up to 5% a warning,
// beyond that critical. A zero expectation with any difference at all
// is critical.
func ClassifyDeviation(diff, expected int64) dto.DeviationResponse {
	resp := dto.DeviationResponse{Amount: diff}
	if expected == 0 {
		if diff == 0 {
			resp.Percentage = decimal.Zero
			resp.Classification = DeviationNormal
		} else {
			resp.Percentage = decimal.NewFromInt(100)
			resp.Classification = DeviationCritical
		}
		return resp
	}

	pct := decimal.NewFromInt(diff).Abs().
		Div(decimal.NewFromInt(expected).Abs()).
		Mul(decimal.NewFromInt(100)).
		Round(2)
	resp.Percentage = pct

	switch {
	case pct.LessThanOrEqual(decimal.NewFromInt(1)):
		resp.Classification = DeviationNormal
	case pct.LessThanOrEqual(decimal.NewFromInt(5)):
		resp.Classification = DeviationWarning
	default:
		resp.Classification = DeviationCritical
	}
	return resp
}

func closureToResponse(c *model.CashClosure, dev dto.DeviationResponse) dto.ClosureResponse {
	payments := map[string]int64{}
	if c.PaymentsSummary != "" {
		_ = json.Unmarshal([]byte(c.PaymentsSummary), &payments)
	}
	return dto.ClosureResponse{
		ID:           c.ID.String(),
		User:         c.User,
		OpenedAt:     c.OpenedAt.Format("2006-01-02 15:04:05"),
		ClosedAt:     c.ClosedAt.Format("2006-01-02 15:04:05"),
		OpeningCash:  c.OpeningCash,
		CashInSales:  c.CashInSales,
		CashExpenses: c.CashExpenses,
		CashCounted:  c.CashCounted,
		CashDiff:     c.CashDiff,
		TotalSales:   c.TotalSales,
		Payments:     payments,
		Deviation:    dev,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
	}
}
