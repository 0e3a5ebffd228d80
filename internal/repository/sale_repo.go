package repository

import (
	"context"
	"time"

	"minegocio/internal/dto"
	"minegocio/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	// CreateTx inserts the sale with its items and payments inside a
	// caller-owned transaction.
	CreateTx(tx *gorm.DB, s *model.Sale) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	ListRecent(ctx context.Context, limit int) ([]model.Sale, error)

	// Closure aggregations. Bounds are inclusive; empty windows sum to 0.
	TotalForPeriod(ctx context.Context, start, end time.Time) (int64, error)
	PaymentsSummaryForPeriod(ctx context.Context, start, end time.Time) ([]dto.MethodTotal, error)
	TopProducts(ctx context.Context, start, end time.Time, limit int) ([]dto.TopProduct, error)

	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) DB() *gorm.DB { return r.db }

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return tx.Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Preload("Items").Preload("Payments").First(&s, id).Error
	return &s, err
}

func (r *saleRepo) ListRecent(ctx context.Context, limit int) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&sales).Error
	return sales, err
}

func (r *saleRepo) TotalForPeriod(ctx context.Context, start, end time.Time) (int64, error) {
	var row struct{ Total int64 }
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Select("COALESCE(SUM(total),0) AS total").
		Where("created_at BETWEEN ? AND ?", start, end).
		Scan(&row).Error
	return row.Total, err
}

// TopProducts ranks sold items by units over the window, grouped on the
// snapshotted code and name.
func (r *saleRepo) TopProducts(ctx context.Context, start, end time.Time, limit int) ([]dto.TopProduct, error) {
	var rows []dto.TopProduct
	err := r.db.WithContext(ctx).Model(&model.SaleItem{}).
		Select("sale_items.product_code AS code, sale_items.product_name AS name, SUM(sale_items.qty) AS units, SUM(sale_items.qty * sale_items.price) AS amount").
		Joins("JOIN sales ON sale_items.sale_id = sales.id").
		Where("sales.created_at BETWEEN ? AND ?", start, end).
		Group("sale_items.product_code, sale_items.product_name").
		Order("units DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *saleRepo) PaymentsSummaryForPeriod(ctx context.Context, start, end time.Time) ([]dto.MethodTotal, error) {
	var rows []dto.MethodTotal
	err := r.db.WithContext(ctx).Model(&model.SalePayment{}).
		Select("sale_payments.method AS method, SUM(sale_payments.amount) AS total, COUNT(DISTINCT sale_payments.sale_id) AS count").
		Joins("JOIN sales ON sale_payments.sale_id = sales.id").
		Where("sales.created_at BETWEEN ? AND ?", start, end).
		Group("sale_payments.method").
		Order("method ASC").
		Scan(&rows).Error
	return rows, err
}
