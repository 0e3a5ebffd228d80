package repository

import (
	"context"
	"time"

	"minegocio/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CashflowRepository covers the three cash movements that feed the
// closure arithmetic: outflows, adjustments and paid supplier orders.
type CashflowRepository interface {
	CreateOutflow(ctx context.Context, o *model.Outflow) error
	ListOutflows(ctx context.Context, start, end time.Time) ([]model.Outflow, error)
	SumOutflows(ctx context.Context, start, end time.Time) (int64, error)

	CreateAdjustment(ctx context.Context, a *model.Adjustment) error
	ListAdjustments(ctx context.Context, start, end time.Time) ([]model.Adjustment, error)
	SumAdjustments(ctx context.Context, start, end time.Time) (int64, error)

	CreatePaidOrder(ctx context.Context, p *model.PaidOrder) error
	DeletePaidOrder(ctx context.Context, id uuid.UUID) error
	ListPaidOrders(ctx context.Context, start, end time.Time) ([]model.PaidOrder, error)
	SumPaidOrders(ctx context.Context, start, end time.Time) (int64, error)
}

type cashflowRepo struct{ db *gorm.DB }

func NewCashflowRepository(db *gorm.DB) CashflowRepository { return &cashflowRepo{db: db} }

func (r *cashflowRepo) CreateOutflow(ctx context.Context, o *model.Outflow) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *cashflowRepo) ListOutflows(ctx context.Context, start, end time.Time) ([]model.Outflow, error) {
	var rows []model.Outflow
	err := r.db.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *cashflowRepo) SumOutflows(ctx context.Context, start, end time.Time) (int64, error) {
	return r.sumForPeriod(ctx, &model.Outflow{}, start, end)
}

func (r *cashflowRepo) CreateAdjustment(ctx context.Context, a *model.Adjustment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *cashflowRepo) ListAdjustments(ctx context.Context, start, end time.Time) ([]model.Adjustment, error) {
	var rows []model.Adjustment
	err := r.db.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *cashflowRepo) SumAdjustments(ctx context.Context, start, end time.Time) (int64, error) {
	return r.sumForPeriod(ctx, &model.Adjustment{}, start, end)
}

func (r *cashflowRepo) CreatePaidOrder(ctx context.Context, p *model.PaidOrder) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *cashflowRepo) DeletePaidOrder(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PaidOrder{}, id).Error
}

func (r *cashflowRepo) ListPaidOrders(ctx context.Context, start, end time.Time) ([]model.PaidOrder, error) {
	var rows []model.PaidOrder
	err := r.db.WithContext(ctx).
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *cashflowRepo) SumPaidOrders(ctx context.Context, start, end time.Time) (int64, error) {
	return r.sumForPeriod(ctx, &model.PaidOrder{}, start, end)
}

func (r *cashflowRepo) sumForPeriod(ctx context.Context, m any, start, end time.Time) (int64, error) {
	var row struct{ Total int64 }
	err := r.db.WithContext(ctx).Model(m).
		Select("COALESCE(SUM(amount),0) AS total").
		Where("created_at BETWEEN ? AND ?", start, end).
		Scan(&row).Error
	return row.Total, err
}
