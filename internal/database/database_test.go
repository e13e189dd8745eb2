package database

import (
	"path/filepath"
	"testing"

	"dealbook/internal/config"
	"dealbook/internal/logger"
	"dealbook/internal/models"
)

func init() {
	logger.Init("test")
}

func TestNewConfig(t *testing.T) {
	t.Run("rejects_unknown_driver", func(t *testing.T) {
		if _, err := NewConfig(&config.Config{DBDriver: "mysql"}); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("postgres_urls", func(t *testing.T) {
		cfg, err := NewConfig(&config.Config{
			DBDriver: DriverPostgres, DBHost: "db", DBPort: "5432",
			DBUser: "u", DBPassword: "p", DBName: "deals", DBSSLMode: "disable",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := cfg.MigrateURL(); got != "postgres://u:p@db:5432/deals?sslmode=disable" {
			t.Errorf("unexpected migrate url %q", got)
		}
		if got := cfg.DSN(); got != "host=db port=5432 user=u password=p dbname=deals sslmode=disable" {
			t.Errorf("unexpected dsn %q", got)
		}
	})
}

func TestManager_SQLite(t *testing.T) {
	cfg, err := NewConfig(&config.Config{
		DBDriver:   DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "dealbook.db"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer func() { _ = m.Close() }()

	if err := m.Migrate(); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	for _, model := range models.All() {
		if !m.DB().Migrator().HasTable(model) {
			t.Errorf("expected table for %T", model)
		}
	}
}
