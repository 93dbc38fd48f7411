// Package database opens the gorm handle for the configured driver.
package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"reviewhub/internal/config"
	"reviewhub/internal/logging"
	"reviewhub/internal/platform/mysql"
	"reviewhub/internal/platform/postgres"
	"reviewhub/internal/platform/sqlite"
)

// Open connects with unique and foreign key violations translated into
// gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated for every driver.
func Open(ctx context.Context, cfg *config.Config, log logging.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         NewGormLogger(log, 0),
	}

	switch cfg.Database.Driver {
	case config.DriverMySQL:
		return mysql.New(ctx, cfg.MySQLDSN(), gormCfg)
	case config.DriverPostgres:
		return postgres.New(ctx, cfg.PostgresDSN(), gormCfg)
	case config.DriverSQLite:
		return sqlite.Open(ctx, cfg.SQLite.Path, gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
