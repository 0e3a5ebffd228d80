package model

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry. Price is in integer minor units (no
// decimals are stored anywhere in the money path). Stock is advisory:
// sales may drive it negative and nothing in the core blocks on it.
type Product struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code       string     `gorm:"uniqueIndex;not null"`
	Name       string     `gorm:"index;not null"`
	Price      int64      `gorm:"not null"`
	Stock      int        `gorm:"not null;default:0"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
}

func (Product) TableName() string { return "products" }
