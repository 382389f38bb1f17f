// Package pgtest opens migrated in-memory databases for tests of the packages
// that sit on top of the gorm repositories.
package pgtest

import (
	"testing"

	"fooddelivery/internal/adapters/out/postgres"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLite returns a fresh in-memory SQLite database with the full schema.
// The pool is limited to one connection because every connection to ":memory:"
// opens its own empty database; transactions therefore run one at a time.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres.AutoMigrate(db))
	return db
}
