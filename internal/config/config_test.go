package config

import "testing"

func TestNewDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOGLEVEL", "DEFAULTPLANDAYS", "MAXUPLOADBYTES"} {
		t.Setenv(key, "")
	}

	cfg := New()

	if cfg.Port != "8080" {
		t.Fatalf("port = %q, want 8080", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level = %q, want info", cfg.LogLevel)
	}
	if cfg.DefaultPlanDays != 30 {
		t.Fatalf("default plan days = %d, want 30", cfg.DefaultPlanDays)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("max upload = %d, want 10MiB", cfg.MaxUploadBytes)
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOGLEVEL", "debug")
	t.Setenv("DEFAULTPLANDAYS", "90")
	t.Setenv("MAXUPLOADBYTES", "1024")

	cfg := New()
	if cfg.Port != "9090" || cfg.LogLevel != "debug" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.DefaultPlanDays != 90 || cfg.MaxUploadBytes != 1024 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestNewRejectsBadInts(t *testing.T) {
	t.Setenv("DEFAULTPLANDAYS", "ninety")
	t.Setenv("MAXUPLOADBYTES", "-1")

	cfg := New()
	if cfg.DefaultPlanDays != 30 {
		t.Fatalf("default plan days = %d, want fallback", cfg.DefaultPlanDays)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("max upload = %d, want fallback", cfg.MaxUploadBytes)
	}
}
