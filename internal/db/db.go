package db

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-backoffice/internal/config"
	"github.com/BruksfildServices01/salon-backoffice/internal/models"
)

// AllModels lists every table the service owns, in dependency order.
func AllModels() []any {
	return []any{
		&models.Client{},
		&models.Service{},
		&models.Appointment{},
		&models.Product{},
		&models.Sale{},
		&models.SaleLine{},
		&models.AuditLog{},
	}
}

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{PrepareStmt: true}
	if cfg.IsProduction() {
		gormCfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info().Msg("database ready")
	return db, nil
}

// Migrate runs AutoMigrate and then the schema patches AutoMigrate cannot
// express. Every patch is idempotent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	for _, p := range schemaPatches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("schema patch %s: %w", p.name, err)
		}
	}
	return nil
}

type schemaPatch struct {
	name string
	sql  string
}

// Foreign keys are declared here instead of through association fields so
// the records stay id-only.
var schemaPatches = []schemaPatch{
	{
		name: "fk_appointments_client",
		sql: `DO $$ BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_appointments_client') THEN
		ALTER TABLE appointments ADD CONSTRAINT fk_appointments_client
			FOREIGN KEY (client_id) REFERENCES clients(id) ON DELETE RESTRICT;
	END IF;
END $$;`,
	},
	{
		name: "fk_appointments_service",
		sql: `DO $$ BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_appointments_service') THEN
		ALTER TABLE appointments ADD CONSTRAINT fk_appointments_service
			FOREIGN KEY (service_id) REFERENCES services(id) ON DELETE RESTRICT;
	END IF;
END $$;`,
	},
	{
		name: "fk_sales_client",
		sql: `DO $$ BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_sales_client') THEN
		ALTER TABLE sales ADD CONSTRAINT fk_sales_client
			FOREIGN KEY (client_id) REFERENCES clients(id) ON DELETE RESTRICT;
	END IF;
END $$;`,
	},
	{
		// The entity floor is 5 minutes; the catalog rules demand 15.
		name: "chk_services_duration",
		sql: `DO $$ BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_services_duration') THEN
		ALTER TABLE services ADD CONSTRAINT chk_services_duration
			CHECK (duration_minutes BETWEEN 5 AND 480);
	END IF;
END $$;`,
	},
	{
		name: "chk_products_stock",
		sql: `DO $$ BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_products_stock') THEN
		ALTER TABLE products ADD CONSTRAINT chk_products_stock
			CHECK (stock BETWEEN 0 AND 10000);
	END IF;
END $$;`,
	},
}

// Ping checks the pooled connection behind db.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
