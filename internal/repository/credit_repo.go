package repository

import (
	"context"
	"time"

	"minegocio/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreditRepository interface {
	Create(ctx context.Context, c *model.Credit) error
	CreateTx(tx *gorm.DB, c *model.Credit) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Credit, error)
	List(ctx context.Context, q string, onlyOpen bool) ([]model.Credit, error)

	// Payment application, split so the service can run both steps in
	// one transaction: insert the payment, decrement the balance, then
	// mark as closed when the balance reaches zero or below. Closed is
	// sticky; later payments never reopen the record.
	CreatePaymentTx(tx *gorm.DB, p *model.CreditPayment) error
	DecrementBalanceTx(tx *gorm.DB, id uuid.UUID, amount int64) error
	CloseIfSettledTx(tx *gorm.DB, id uuid.UUID) error

	ListPayments(ctx context.Context, creditID uuid.UUID) ([]model.CreditPayment, error)
	OpenBalanceTotal(ctx context.Context) (int64, error)
	CreatedTotalForPeriod(ctx context.Context, start, end time.Time) (int64, error)

	DB() *gorm.DB
}

type creditRepo struct{ db *gorm.DB }

func NewCreditRepository(db *gorm.DB) CreditRepository { return &creditRepo{db: db} }

func (r *creditRepo) DB() *gorm.DB { return r.db }

func (r *creditRepo) Create(ctx context.Context, c *model.Credit) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *creditRepo) CreateTx(tx *gorm.DB, c *model.Credit) error {
	return tx.Create(c).Error
}

func (r *creditRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Credit, error) {
	var c model.Credit
	err := r.db.WithContext(ctx).Preload("Customer").First(&c, id).Error
	return &c, err
}

func (r *creditRepo) List(ctx context.Context, q string, onlyOpen bool) ([]model.Credit, error) {
	var credits []model.Credit
	query := r.db.WithContext(ctx).Preload("Customer").
		Joins("LEFT JOIN customers ON customers.id = credits.customer_id")
	if onlyOpen {
		query = query.Where("credits.closed = ?", false)
	}
	if q != "" {
		like := "%" + q + "%"
		query = query.Where(
			"customers.name ILIKE ? OR credits.reference ILIKE ? OR credits.description ILIKE ?",
			like, like, like,
		)
	}
	err := query.Order("credits.created_at DESC").Find(&credits).Error
	return credits, err
}

func (r *creditRepo) CreatePaymentTx(tx *gorm.DB, p *model.CreditPayment) error {
	return tx.Create(p).Error
}

func (r *creditRepo) DecrementBalanceTx(tx *gorm.DB, id uuid.UUID, amount int64) error {
	return tx.Model(&model.Credit{}).Where("id = ?", id).
		Update("balance", gorm.Expr("balance - ?", amount)).Error
}

func (r *creditRepo) CloseIfSettledTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Model(&model.Credit{}).
		Where("id = ? AND balance <= 0", id).
		Update("closed", true).Error
}

func (r *creditRepo) ListPayments(ctx context.Context, creditID uuid.UUID) ([]model.CreditPayment, error) {
	var payments []model.CreditPayment
	err := r.db.WithContext(ctx).Where("credit_id = ?", creditID).
		Order("created_at DESC").Find(&payments).Error
	return payments, err
}

func (r *creditRepo) OpenBalanceTotal(ctx context.Context) (int64, error) {
	var row struct{ Total int64 }
	err := r.db.WithContext(ctx).Model(&model.Credit{}).
		Select("COALESCE(SUM(balance),0) AS total").
		Where("closed = ?", false).
		Scan(&row).Error
	return row.Total, err
}

func (r *creditRepo) CreatedTotalForPeriod(ctx context.Context, start, end time.Time) (int64, error) {
	var row struct{ Total int64 }
	err := r.db.WithContext(ctx).Model(&model.Credit{}).
		Select("COALESCE(SUM(amount),0) AS total").
		Where("created_at BETWEEN ? AND ?", start, end).
		Scan(&row).Error
	return row.Total, err
}
