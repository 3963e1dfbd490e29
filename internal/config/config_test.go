package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.SSLMode != "disable" {
		t.Errorf("SSLMode = %q, want disable", cfg.Database.SSLMode)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("JOBBOARD_SERVER_PORT", "9090")
	t.Setenv("JOBBOARD_DATABASE_NAME", "jobboard_test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Name != "jobboard_test" {
		t.Errorf("Name = %q, want jobboard_test", cfg.Database.Name)
	}
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		Name:     "jobboard",
		SSLMode:  "disable",
	}
	want := "host=localhost user=postgres password=secret dbname=jobboard port=5432 sslmode=disable"
	if got := d.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
