package service

import (
	"context"

	"minegocio/internal/dto"
	"minegocio/internal/repository"
)

const (
	defaultTopProducts = 5
	maxTopProducts     = 50
)

// ReportService serves the statistics window: sales volume, payment
// method breakdown, product ranking, and the ledger position. Pure
// reads, nothing here mutates state.
type ReportService struct {
	sales   repository.SaleRepository
	credits repository.CreditRepository
	debts   repository.DebtRepository
}

func NewReportService(
	sales repository.SaleRepository,
	credits repository.CreditRepository,
	debts repository.DebtRepository,
) *ReportService {
	return &ReportService{sales: sales, credits: credits, debts: debts}
}

func (s *ReportService) Sales(ctx context.Context, req dto.SalesReportRequest) (*dto.SalesReport, error) {
	from, to, err := ParseWindow(req.Start, req.End)
	if err != nil {
		return nil, err
	}

	top := req.Top
	if top < 1 {
		top = defaultTopProducts
	}
	if top > maxTopProducts {
		top = maxTopProducts
	}

	totalSales, err := s.sales.TotalForPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	methods, err := s.sales.PaymentsSummaryForPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	topProducts, err := s.sales.TopProducts(ctx, from, to, top)
	if err != nil {
		return nil, err
	}
	creditsInWindow, err := s.credits.CreatedTotalForPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	debtsInWindow, err := s.debts.CreatedTotalForPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	openCredits, err := s.credits.OpenBalanceTotal(ctx)
	if err != nil {
		return nil, err
	}
	openDebts, err := s.debts.OpenBalanceTotal(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.SalesReport{
		Start:            from.Format("2006-01-02 15:04:05"),
		End:              to.Format("2006-01-02 15:04:05"),
		TotalSales:       totalSales,
		PaymentsByMethod: methods,
		TopProducts:      topProducts,
		CreditsInWindow:  creditsInWindow,
		DebtsInWindow:    debtsInWindow,
		OpenCredits:      openCredits,
		OpenDebts:        openDebts,
	}, nil
}
