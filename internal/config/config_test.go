package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	os.Setenv("MONGODB_DATABASE", "tasknest_test")
	os.Setenv("REDIS_HOST", "localhost")
	os.Setenv("REDIS_PORT", "6379")
	os.Setenv("FIREBASE_PROJECT_ID", "tasknest-test")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI == "" || cfg.Redis.Host == "" {
		t.Fatalf("unexpected empty config values: %+v", cfg)
	}
	if cfg.Firebase.ProjectID != "tasknest-test" {
		t.Fatalf("unexpected firebase project id: %q", cfg.Firebase.ProjectID)
	}
	if cfg.Server.Port == "" {
		t.Fatalf("expected server port default, got empty")
	}
}
