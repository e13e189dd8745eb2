// Package testutil provides in-memory databases, fixtures and assertions
// for package tests.
package testutil

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"dealbook/internal/models"
)

// SetupTestDB returns a migrated in-memory sqlite database private to t.
// It is closed when the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := fmt.Sprintf("register%d", nextID())
	db, err := gorm.Open(
		sqlite.Open("file:"+name+"?mode=memory&cache=shared&_foreign_keys=1"),
		&gorm.Config{Logger: gormlogger.Discard},
	)
	if err != nil {
		t.Fatalf("open %s: %v", name, err)
	}

	pool, err := db.DB()
	if err != nil {
		t.Fatalf("pool for %s: %v", name, err)
	}
	// One connection keeps the shared-cache database alive and serialises writers.
	pool.SetMaxOpenConns(1)
	t.Cleanup(func() {
		if err := pool.Close(); err != nil {
			t.Errorf("close %s: %v", name, err)
		}
	})

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate %s: %v", name, err)
	}
	return db
}
