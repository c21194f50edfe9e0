// Package db opens the backing database and keeps the schema current. The
// default deployment is a single sqlite file next to the app data; pointing
// DATABASE_DSN at a postgres server switches drivers for shared installs.
package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/llucior2/control-de-contratos/internal/models"
)

func Connect(dsn string) (*gorm.DB, error) {
	dsn = NormalizeDSN(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_DSN vacío, revise la configuración")
	}
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	if IsPostgres(dsn) {
		var db *gorm.DB
		var err error
		for i := 0; i < 10; i++ {
			db, err = gorm.Open(postgres.Open(dsn), cfg)
			if err == nil {
				return db, nil
			}
			fmt.Println("Retrying DB connection...", err)
			time.Sleep(2 * time.Second)
		}
		return nil, fmt.Errorf("failed to connect database after retries: %w", err)
	}

	if dir := filepath.Dir(dsn); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	return gorm.Open(sqlite.Open(dsn), cfg)
}

// Migrate keeps the eight collection tables current. AutoMigrate is enough
// here: the store rewrites whole documents, there is no SQL migration
// history to replay.
func Migrate(db *gorm.DB) error {
	for _, m := range []any{
		&models.RazonSocial{}, &models.Cliente{}, &models.Contrato{},
		&models.OrdenDeCambio{}, &models.Factura{}, &models.Pago{},
		&models.CatalogoConcepto{}, &models.ProcesoConstructivo{},
	} {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}

func ConnectAndMigrate(dsn string) (*gorm.DB, error) {
	conn, err := Connect(dsn)
	if err != nil {
		return nil, err
	}
	if err := conn.Exec("SELECT 1").Error; err != nil {
		return nil, fmt.Errorf("db ping failed: %w", err)
	}
	if err := Migrate(conn); err != nil {
		return nil, err
	}
	return conn, nil
}
