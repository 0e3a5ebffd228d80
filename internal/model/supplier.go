package model

import (
	"time"

	"github.com/google/uuid"
)

// Supplier holds purchasing contacts. Not part of any money flow, kept
// for the catalog side of the business.
type Supplier struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"not null;index"`
	TaxID         *string   `gorm:"column:tax_id"`
	ContactPerson *string
	Email         *string
	Phone         *string
	Phone2        *string
	Address       *string
	Notes         *string
	CreatedAt     time.Time
}

func (Supplier) TableName() string { return "suppliers" }
