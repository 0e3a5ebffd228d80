package model

import (
	"time"

	"github.com/google/uuid"
)

// CashClosure is the immutable reconciliation snapshot for a register
// session. PaymentsSummary serializes the per-method totals as JSON.
// CashDiff = counted - expected; rows are never updated after insert.
type CashClosure struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	User            string
	OpenedAt        time.Time `gorm:"not null"`
	ClosedAt        time.Time `gorm:"not null"`
	OpeningCash     int64     `gorm:"not null;default:0"`
	CashInSales     int64     `gorm:"not null;default:0"`
	CashExpenses    int64     `gorm:"not null;default:0"`
	CashCounted     int64     `gorm:"not null;default:0"`
	CashDiff        int64     `gorm:"not null;default:0"`
	TotalSales      int64     `gorm:"not null;default:0"`
	PaymentsSummary string
	Notes           string
	CreatedAt       time.Time
}

func (CashClosure) TableName() string { return "cash_closures" }
