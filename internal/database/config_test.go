package database

import "testing"

func TestNewConfig(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/ledger.db")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Driver != DriverSQLite || cfg.SQLitePath != "/tmp/ledger.db" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestNewConfig_UnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	if _, err := NewConfig(); err == nil {
		t.Fatal("expected an error for an unsupported driver")
	}
}

func TestConfigURLs(t *testing.T) {
	cfg := &Config{Host: "db", Port: "5433", User: "u", Password: "p", DBName: "ledger", SSLMode: "require"}

	if got, want := cfg.DSN(), "host=db port=5433 user=u password=p dbname=ledger sslmode=require"; got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
	if got, want := cfg.MigrateURL(), "postgres://u:p@db:5433/ledger?sslmode=require"; got != want {
		t.Errorf("MigrateURL() = %q, want %q", got, want)
	}
}

func TestManager_SQLiteAutoMigrate(t *testing.T) {
	cfg := &Config{Driver: DriverSQLite, SQLitePath: "file:database_test?mode=memory&cache=shared"}

	m, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer m.Close()

	if err := m.Migrate(); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if !m.DB().Migrator().HasTable("transactions") {
		t.Error("expected transactions table after migration")
	}
}
