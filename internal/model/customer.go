package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a credit ("fiado") account holder.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null;index"`
	Document  *string
	Phone     *string
	Email     *string
	Address   *string
	Notes     *string
	CreatedAt time.Time
}

func (Customer) TableName() string { return "customers" }
