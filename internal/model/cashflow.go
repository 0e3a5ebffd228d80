package model

import (
	"time"

	"github.com/google/uuid"
)

// Outflow is a till expense independent of any sale.
type Outflow struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Amount      int64     `gorm:"not null"`
	Description string
	CreatedAt   time.Time `gorm:"index"`
}

func (Outflow) TableName() string { return "outflows" }

// Adjustment is an expense-style correction entered by a user, sourced
// independently of outflows. Closures union both tables.
type Adjustment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Kind        string
	ReferenceID *uuid.UUID `gorm:"type:uuid"`
	Note        string
	Amount      int64 `gorm:"not null"`
	User        string
	CreatedAt   time.Time `gorm:"index"`
}

func (Adjustment) TableName() string { return "adjustments" }

// PaidOrder is a cash amount already disbursed against a pre-paid custom
// order. From the till's perspective it reduces available cash.
type PaidOrder struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerName string    `gorm:"not null"`
	Amount       int64     `gorm:"not null"`
	Note         *string
	CreatedAt    time.Time `gorm:"index"`
}

func (PaidOrder) TableName() string { return "paid_orders" }
