package repository

import (
	"context"
	"time"

	"minegocio/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DebtRepository mirrors CreditRepository for money the business owes.
type DebtRepository interface {
	Create(ctx context.Context, d *model.Debt) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Debt, error)
	List(ctx context.Context, q string, onlyOpen bool) ([]model.Debt, error)

	CreatePaymentTx(tx *gorm.DB, p *model.DebtPayment) error
	DecrementBalanceTx(tx *gorm.DB, id uuid.UUID, amount int64) error
	CloseIfSettledTx(tx *gorm.DB, id uuid.UUID) error

	ListPayments(ctx context.Context, debtID uuid.UUID) ([]model.DebtPayment, error)
	OpenBalanceTotal(ctx context.Context) (int64, error)
	CreatedTotalForPeriod(ctx context.Context, start, end time.Time) (int64, error)

	DB() *gorm.DB
}

type debtRepo struct{ db *gorm.DB }

func NewDebtRepository(db *gorm.DB) DebtRepository { return &debtRepo{db: db} }

func (r *debtRepo) DB() *gorm.DB { return r.db }

func (r *debtRepo) Create(ctx context.Context, d *model.Debt) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *debtRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Debt, error) {
	var d model.Debt
	err := r.db.WithContext(ctx).First(&d, id).Error
	return &d, err
}

func (r *debtRepo) List(ctx context.Context, q string, onlyOpen bool) ([]model.Debt, error) {
	var debts []model.Debt
	query := r.db.WithContext(ctx)
	if onlyOpen {
		query = query.Where("closed = ?", false)
	}
	if q != "" {
		like := "%" + q + "%"
		query = query.Where("creditor_name ILIKE ? OR description ILIKE ?", like, like)
	}
	err := query.Order("created_at DESC").Find(&debts).Error
	return debts, err
}

func (r *debtRepo) CreatePaymentTx(tx *gorm.DB, p *model.DebtPayment) error {
	return tx.Create(p).Error
}

func (r *debtRepo) DecrementBalanceTx(tx *gorm.DB, id uuid.UUID, amount int64) error {
	return tx.Model(&model.Debt{}).Where("id = ?", id).
		Update("balance", gorm.Expr("balance - ?", amount)).Error
}

func (r *debtRepo) CloseIfSettledTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Model(&model.Debt{}).
		Where("id = ? AND balance <= 0", id).
		Update("closed", true).Error
}

func (r *debtRepo) ListPayments(ctx context.Context, debtID uuid.UUID) ([]model.DebtPayment, error) {
	var payments []model.DebtPayment
	err := r.db.WithContext(ctx).Where("debt_id = ?", debtID).
		Order("created_at DESC").Find(&payments).Error
	return payments, err
}

func (r *debtRepo) OpenBalanceTotal(ctx context.Context) (int64, error) {
	var row struct{ Total int64 }
	err := r.db.WithContext(ctx).Model(&model.Debt{}).
		Select("COALESCE(SUM(balance),0) AS total").
		Where("closed = ?", false).
		Scan(&row).Error
	return row.Total, err
}

func (r *debtRepo) CreatedTotalForPeriod(ctx context.Context, start, end time.Time) (int64, error) {
	var row struct{ Total int64 }
	err := r.db.WithContext(ctx).Model(&model.Debt{}).
		Select("COALESCE(SUM(amount),0) AS total").
		Where("created_at BETWEEN ? AND ?", start, end).
		Scan(&row).Error
	return row.Total, err
}
