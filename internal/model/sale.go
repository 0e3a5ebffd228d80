package model

import (
	"time"

	"github.com/google/uuid"
)

// Sale is an immutable committed transaction. Total always equals the
// sum of qty×price over its items; corrections are new records, never
// updates.
type Sale struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Total     int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"index"`

	Items    []SaleItem    `gorm:"foreignKey:SaleID"`
	Payments []SalePayment `gorm:"foreignKey:SaleID"`
}

func (Sale) TableName() string { return "sales" }

// SaleItem snapshots code, name, category and unit price at sale time.
// ProductID is nil for manual (non-catalog) lines; those never touch
// stock.
type SaleItem struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID       uuid.UUID  `gorm:"type:uuid;index;not null"`
	ProductID    *uuid.UUID `gorm:"type:uuid;index"`
	ProductCode  string
	ProductName  string
	CategoryID   *uuid.UUID `gorm:"type:uuid"`
	CategoryName string
	Qty          int   `gorm:"not null"`
	Price        int64 `gorm:"not null"`
}

func (SaleItem) TableName() string { return "sale_items" }

// SalePayment is one payment line against a sale. Method is a free-text
// label ("Efectivo", "Transferencia"); classification into cash or
// transfer buckets happens heuristically at closure time.
type SalePayment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Method    string    `gorm:"not null"`
	Amount    int64     `gorm:"not null"`
	Details   *string
	CreatedAt time.Time
}

func (SalePayment) TableName() string { return "sale_payments" }
