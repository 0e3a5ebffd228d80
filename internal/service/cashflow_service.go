package service

import (
	"context"
	"time"

	"minegocio/internal/dto"
	"minegocio/internal/model"
	"minegocio/internal/repository"

	"github.com/google/uuid"
)

// CashflowService records the cash movements outside the sales path:
// outflows, adjustments and paid supplier orders. All three reduce
// expected cash at closure time.
type CashflowService struct {
	repo repository.CashflowRepository
}

func NewCashflowService(repo repository.CashflowRepository) *CashflowService {
	return &CashflowService{repo: repo}
}

// resolvePeriod defaults an empty filter to the current day.
func resolvePeriod(filter dto.PeriodFilter) (time.Time, time.Time, error) {
	if filter.Start == "" && filter.End == "" {
		now := time.Now()
		from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		return from, from.Add(24*time.Hour - time.Second), nil
	}
	return ParseWindow(filter.Start, filter.End)
}

func (s *CashflowService) CreateOutflow(ctx context.Context, req dto.OutflowRequest) (*dto.OutflowResponse, error) {
	o := &model.Outflow{Amount: req.Amount, Description: req.Description, CreatedAt: time.Now()}
	if err := s.repo.CreateOutflow(ctx, o); err != nil {
		return nil, err
	}
	resp := outflowToResponse(o)
	return &resp, nil
}

func (s *CashflowService) ListOutflows(ctx context.Context, filter dto.PeriodFilter) ([]dto.OutflowResponse, error) {
	from, to, err := resolvePeriod(filter)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListOutflows(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OutflowResponse, 0, len(rows))
	for i := range rows {
		out = append(out, outflowToResponse(&rows[i]))
	}
	return out, nil
}

func (s *CashflowService) CreateAdjustment(ctx context.Context, req dto.AdjustmentRequest) (*dto.AdjustmentResponse, error) {
	a := &model.Adjustment{
		Kind:      req.Kind,
		Note:      req.Note,
		Amount:    req.Amount,
		User:      req.User,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateAdjustment(ctx, a); err != nil {
		return nil, err
	}
	resp := adjustmentToResponse(a)
	return &resp, nil
}

func (s *CashflowService) ListAdjustments(ctx context.Context, filter dto.PeriodFilter) ([]dto.AdjustmentResponse, error) {
	from, to, err := resolvePeriod(filter)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListAdjustments(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdjustmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, adjustmentToResponse(&rows[i]))
	}
	return out, nil
}

func (s *CashflowService) CreatePaidOrder(ctx context.Context, req dto.PaidOrderRequest) (*dto.PaidOrderResponse, error) {
	p := &model.PaidOrder{
		CustomerName: req.CustomerName,
		Amount:       req.Amount,
		Note:         req.Note,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.CreatePaidOrder(ctx, p); err != nil {
		return nil, err
	}
	resp := paidOrderToResponse(p)
	return &resp, nil
}

func (s *CashflowService) DeletePaidOrder(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeletePaidOrder(ctx, id)
}

func (s *CashflowService) ListPaidOrders(ctx context.Context, filter dto.PeriodFilter) ([]dto.PaidOrderResponse, error) {
	from, to, err := resolvePeriod(filter)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListPaidOrders(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaidOrderResponse, 0, len(rows))
	for i := range rows {
		out = append(out, paidOrderToResponse(&rows[i]))
	}
	return out, nil
}

func outflowToResponse(o *model.Outflow) dto.OutflowResponse {
	return dto.OutflowResponse{
		ID:          o.ID.String(),
		Amount:      o.Amount,
		Description: o.Description,
		CreatedAt:   o.CreatedAt.Format(time.RFC3339),
	}
}

func adjustmentToResponse(a *model.Adjustment) dto.AdjustmentResponse {
	return dto.AdjustmentResponse{
		ID:        a.ID.String(),
		Kind:      a.Kind,
		Note:      a.Note,
		Amount:    a.Amount,
		User:      a.User,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func paidOrderToResponse(p *model.PaidOrder) dto.PaidOrderResponse {
	return dto.PaidOrderResponse{
		ID:           p.ID.String(),
		CustomerName: p.CustomerName,
		Amount:       p.Amount,
		Note:         p.Note,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}
