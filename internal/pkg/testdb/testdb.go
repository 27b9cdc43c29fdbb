// Package testdb opens a throwaway in-memory database with the application
// schema, for repository tests that need real SQL.
package testdb

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The entities carry postgres-only defaults (uuid_generate_v4), so the
// tables are declared by hand rather than through AutoMigrate.
var schema = []string{
	`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT,
		password TEXT,
		created_at TIMESTAMP,
		updated_at TIMESTAMP
	)`,
	`CREATE TABLE products (
		barcode TEXT PRIMARY KEY,
		name TEXT,
		expiration_date TEXT,
		image_url TEXT,
		created_at TIMESTAMP,
		updated_at TIMESTAMP
	)`,
	`CREATE TABLE product_categories (
		id TEXT PRIMARY KEY,
		product_barcode TEXT,
		name TEXT
	)`,
	`CREATE TABLE fridge_holdings (
		id TEXT PRIMARY KEY,
		user_email TEXT,
		product_barcode TEXT,
		quantity INTEGER,
		expiration_date TEXT,
		created_at TIMESTAMP,
		updated_at TIMESTAMP
	)`,
	`CREATE TABLE pantry_holdings (
		id TEXT PRIMARY KEY,
		user_email TEXT,
		product_barcode TEXT,
		quantity INTEGER,
		expiration_date TEXT,
		created_at TIMESTAMP,
		updated_at TIMESTAMP
	)`,
}

func New(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// every pooled connection would get its own :memory: database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, stmt := range schema {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}
