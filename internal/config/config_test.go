package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("unexpected listen address: %q", cfg.ListenAddr)
	}
	if cfg.MaxUploadBytes != 10485760 {
		t.Fatalf("unexpected upload cap: %d", cfg.MaxUploadBytes)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "assessments")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel)
	}
	dsn := cfg.Database.DSN()
	want := "host=db.internal port=5432 dbname=assessments user=postgres password=postgres sslmode=disable"
	if dsn != want {
		t.Fatalf("unexpected DSN:\n got %q\nwant %q", dsn, want)
	}
}
