package model

import (
	"time"

	"github.com/google/uuid"
)

// Debt mirrors Credit but on the liability side: money the store owes an
// external creditor. Same amortization rules, no customer link.
type Debt struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreditorName string    `gorm:"not null;index"`
	Description  *string
	Amount       int64 `gorm:"not null"`
	Balance      int64 `gorm:"not null"`
	Closed       bool  `gorm:"not null;default:false"`
	DueDate      *time.Time
	CreatedAt    time.Time `gorm:"index"`

	Payments []DebtPayment `gorm:"foreignKey:DebtID"`
}

func (Debt) TableName() string { return "debts" }

type DebtPayment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DebtID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Amount    int64     `gorm:"not null"`
	Method    *string
	Note      *string
	CreatedAt time.Time
}

func (DebtPayment) TableName() string { return "debt_payments" }
