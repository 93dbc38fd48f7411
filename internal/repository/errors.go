package repository

import "gorm.io/gorm"

// Storage constraint violations, as translated by the gorm dialectors when the
// connection is opened with TranslateError. Repository errors wrap them, so
// callers match with errors.Is.
var (
	ErrDuplicateKey      = gorm.ErrDuplicatedKey
	ErrForeignKeyViolate = gorm.ErrForeignKeyViolated
)
