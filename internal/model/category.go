package model

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies products. SaleItem keeps its own snapshot of the
// category so historical reports survive re-categorization.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}

func (Category) TableName() string { return "categories" }
