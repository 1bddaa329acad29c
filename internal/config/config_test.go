package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MAX_FILE_SIZE", "")
	t.Setenv("EXTRACT_TIMEOUT", "")
	t.Setenv("S3_BUCKET_NAME", "")
	t.Setenv("STORAGE_BACKEND", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.MaxFileSize != 5*1024*1024 {
		t.Errorf("MaxFileSize = %d, want 5MiB", cfg.MaxFileSize)
	}
	if cfg.ExtractTimeout != 20*time.Second {
		t.Errorf("ExtractTimeout = %s, want 20s", cfg.ExtractTimeout)
	}
	if cfg.S3BucketName != "resumes" {
		t.Errorf("S3BucketName = %q, want resumes", cfg.S3BucketName)
	}
	if cfg.StorageBackend != StorageS3 {
		t.Errorf("StorageBackend = %q, want s3", cfg.StorageBackend)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "1024")
	t.Setenv("EXTRACT_TIMEOUT", "3s")
	t.Setenv("S3_USE_SSL", "true")
	t.Setenv("STORAGE_BACKEND", "memory")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.MaxFileSize != 1024 {
		t.Errorf("MaxFileSize = %d, want 1024", cfg.MaxFileSize)
	}
	if cfg.ExtractTimeout != 3*time.Second {
		t.Errorf("ExtractTimeout = %s, want 3s", cfg.ExtractTimeout)
	}
	if !cfg.S3UseSSL {
		t.Errorf("S3UseSSL = false, want true")
	}
	if cfg.StorageBackend != StorageMemory {
		t.Errorf("StorageBackend = %q, want memory", cfg.StorageBackend)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "lots")
	t.Setenv("EXTRACT_TIMEOUT", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.MaxFileSize != 5*1024*1024 {
		t.Errorf("MaxFileSize = %d, want default", cfg.MaxFileSize)
	}
	if cfg.ExtractTimeout != 20*time.Second {
		t.Errorf("ExtractTimeout = %s, want default", cfg.ExtractTimeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "no bucket", mutate: func(c *Config) { c.S3BucketName = "" }, wantErr: true},
		{name: "memory needs no bucket", mutate: func(c *Config) { c.StorageBackend = StorageMemory; c.S3BucketName = "" }},
		{name: "unknown backend", mutate: func(c *Config) { c.StorageBackend = "gcs" }, wantErr: true},
		{name: "no database", mutate: func(c *Config) { c.DatabasePath = "" }, wantErr: true},
		{name: "zero size", mutate: func(c *Config) { c.MaxFileSize = 0 }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.ExtractTimeout = -time.Second }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				StorageBackend: StorageS3,
				DatabasePath:   "data/test.db",
				S3BucketName:   "resumes",
				MaxFileSize:    1,
				ExtractTimeout: time.Second,
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
