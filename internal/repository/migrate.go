package repository

import (
	"fmt"

	"gorm.io/gorm"

	"reviewhub/internal/model"
)

// MySQL's default utf8mb4 collations compare case-insensitively, which would
// make "alice" and "Alice" the same username. A binary collation keeps
// usernames and item names case-sensitive for both lookups and unique indexes.
const mysqlTableOptions = "ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin"

// AutoMigrate creates tables, unique indexes, the rating check and the
// cascading foreign keys.
func AutoMigrate(db *gorm.DB) error {
	if opts := tableOptions(db.Dialector.Name()); opts != "" {
		db = db.Set("gorm:table_options", opts)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Item{}, &model.Review{}, &model.Comment{}); err != nil {
		return fmt.Errorf("auto migrate tables failed: %w", err)
	}
	return nil
}

// tableOptions returns the CREATE TABLE suffix for a gorm dialect. PostgreSQL
// and SQLite already compare text byte-wise.
func tableOptions(dialect string) string {
	if dialect == "mysql" {
		return mysqlTableOptions
	}
	return ""
}
