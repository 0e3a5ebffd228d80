package infra

import (
	"fmt"
	"time"

	"minegocio/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDatabase opens the Postgres connection and migrates the schema.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("conectando a postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("migrando esquema: %w", err)
	}

	log.Info().Msg("base de datos lista")
	return db, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.Sale{},
		&model.SaleItem{},
		&model.SalePayment{},
		&model.Customer{},
		&model.Supplier{},
		&model.Credit{},
		&model.CreditPayment{},
		&model.Debt{},
		&model.DebtPayment{},
		&model.Outflow{},
		&model.Adjustment{},
		&model.PaidOrder{},
		&model.CashClosure{},
		&model.InventoryLog{},
	)
}
