package repository

import (
	"context"

	"minegocio/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClosureRepository interface {
	Create(ctx context.Context, c *model.CashClosure) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CashClosure, error)
	List(ctx context.Context, limit int) ([]model.CashClosure, error)
	Latest(ctx context.Context) (*model.CashClosure, error)
}

type closureRepo struct{ db *gorm.DB }

func NewClosureRepository(db *gorm.DB) ClosureRepository { return &closureRepo{db: db} }

func (r *closureRepo) Create(ctx context.Context, c *model.CashClosure) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *closureRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CashClosure, error) {
	var c model.CashClosure
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *closureRepo) List(ctx context.Context, limit int) ([]model.CashClosure, error) {
	var closures []model.CashClosure
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&closures).Error
	return closures, err
}

func (r *closureRepo) Latest(ctx context.Context) (*model.CashClosure, error) {
	var c model.CashClosure
	err := r.db.WithContext(ctx).Order("created_at DESC").First(&c).Error
	return &c, err
}
