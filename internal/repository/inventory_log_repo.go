package repository

import (
	"context"

	"minegocio/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryLogRepository interface {
	Create(ctx context.Context, e *model.InventoryLog) error
	CreateTx(tx *gorm.DB, e *model.InventoryLog) error
	ListForProduct(ctx context.Context, productID uuid.UUID, limit int) ([]model.InventoryLog, error)
	ListRecent(ctx context.Context, limit int) ([]model.InventoryLog, error)
}

type inventoryLogRepo struct{ db *gorm.DB }

func NewInventoryLogRepository(db *gorm.DB) InventoryLogRepository {
	return &inventoryLogRepo{db: db}
}

func (r *inventoryLogRepo) Create(ctx context.Context, e *model.InventoryLog) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *inventoryLogRepo) CreateTx(tx *gorm.DB, e *model.InventoryLog) error {
	return tx.Create(e).Error
}

func (r *inventoryLogRepo) ListForProduct(ctx context.Context, productID uuid.UUID, limit int) ([]model.InventoryLog, error) {
	var entries []model.InventoryLog
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).
		Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

func (r *inventoryLogRepo) ListRecent(ctx context.Context, limit int) ([]model.InventoryLog, error) {
	var entries []model.InventoryLog
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
