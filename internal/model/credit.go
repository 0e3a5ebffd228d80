package model

import (
	"time"

	"github.com/google/uuid"
)

// Credit is money a customer owes the store, opened standalone or as the
// shortfall of an under-paid sale (Reference then carries the sale id).
// Balance is maintained by running decrement on every payment; Closed
// flips once balance reaches zero or below and is never un-set, even if
// later payments drive the balance negative.
type Credit struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Reference   *string
	Description *string
	Amount      int64 `gorm:"not null"`
	Balance     int64 `gorm:"not null"`
	Closed      bool  `gorm:"not null;default:false"`
	DueDate     *time.Time
	CreatedAt   time.Time `gorm:"index"`

	Customer *Customer       `gorm:"foreignKey:CustomerID"`
	Payments []CreditPayment `gorm:"foreignKey:CreditID"`
}

func (Credit) TableName() string { return "credits" }

type CreditPayment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreditID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Amount    int64     `gorm:"not null"`
	Method    *string
	Note      *string
	CreatedAt time.Time
}

func (CreditPayment) TableName() string { return "credit_payments" }
