package model

import (
	"time"

	"github.com/google/uuid"
)

// InventoryLog records manual stock adjustments (restocks, corrections).
// Entries are append-only. Sales do not log here; their stock effect is
// fully reconstructable from sale_items.
type InventoryLog struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID   *uuid.UUID `gorm:"type:uuid;index"`
	ProductCode string
	ProductName string
	Change      int `gorm:"not null"`
	Reason      string
	CreatedAt   time.Time `gorm:"index"`
}

func (InventoryLog) TableName() string { return "inventory_log" }
