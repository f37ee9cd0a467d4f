package config

import (
	"flag"
	"os"
	"testing"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(os.Stderr)
	old := os.Args
	os.Args = []string{old[0]}
	t.Cleanup(func() { os.Args = old })
}

// clearEnv обнуляет переменные, влияющие на конфигурацию
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DATABASE_URI", "PUBLIC_URL", "CORS_ORIGINS", "MAX_UPLOAD_MB", "LOG_LEVEL", "LOG_JSON",
		"BLOB_BACKEND", "BLOB_DIR", "S3_BUCKET", "AWS_REGION", "S3_PUBLIC_BASE_URL",
		"LLM_PROVIDER", "LLM_MODEL", "GEMINI_API_KEY", "GOOGLE_API_KEY", "OPENAI_API_KEY",
		"RESEND_API_KEY", "SENDER_EMAIL", "BASE_URL", "ENABLE_HTTPS",
	} {
		t.Setenv(k, "")
	}
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	clearEnv(t)
	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8000" {
		t.Fatalf("BaseURL default expected 'localhost:8000', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:8000" {
		t.Fatalf("ServerURL default expected 'http://localhost:8000', got %q", cfg.ServerURL)
	}
	if cfg.PublicURL != cfg.ServerURL {
		t.Fatalf("PublicURL must default to ServerURL, got %q", cfg.PublicURL)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("CORSOrigins default expected [*], got %v", cfg.CORSOrigins)
	}
	if cfg.MaxUploadMB != 10 {
		t.Fatalf("MaxUploadMB default expected 10, got %d", cfg.MaxUploadMB)
	}
	if cfg.BlobBackend != BlobBackendLocal || cfg.BlobDir != "uploads" {
		t.Fatalf("blob defaults: backend=%q dir=%q", cfg.BlobBackend, cfg.BlobDir)
	}
	if cfg.LLMProvider != LLMProviderNone {
		t.Fatalf("LLMProvider without keys expected 'none', got %q", cfg.LLMProvider)
	}
	if cfg.SenderEmail != "onboarding@resend.dev" {
		t.Fatalf("SenderEmail default, got %q", cfg.SenderEmail)
	}
	if cfg.AWSRegion != "us-east-1" {
		t.Fatalf("AWSRegion default, got %q", cfg.AWSRegion)
	}
}

func TestNewConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("BLOB_BACKEND", "s3")
	t.Setenv("S3_BUCKET", "lf-photos")
	t.Setenv("MAX_UPLOAD_MB", "3")
	t.Setenv("GEMINI_API_KEY", "g-key")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected 'https://example.com:443', got %q", cfg.ServerURL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("CORSOrigins must be split and trimmed, got %v", cfg.CORSOrigins)
	}
	if cfg.BlobBackend != BlobBackendS3 || cfg.S3Bucket != "lf-photos" {
		t.Fatalf("blob from env: backend=%q bucket=%q", cfg.BlobBackend, cfg.S3Bucket)
	}
	if cfg.MaxUploadMB != 3 {
		t.Fatalf("MaxUploadMB expected 3, got %d", cfg.MaxUploadMB)
	}
	if cfg.LLMProvider != LLMProviderGemini {
		t.Fatalf("LLMProvider must default to gemini when key set, got %q", cfg.LLMProvider)
	}
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	clearEnv(t)
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:8000
	t.Setenv("BASE_URL", "http://bad:8080")
	t.Setenv("BLOB_BACKEND", "ftp")
	t.Setenv("LLM_PROVIDER", "openai")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8000" {
		t.Fatalf("invalid BASE_URL must fallback to 'localhost:8000', got %q", cfg.BaseURL)
	}
	if cfg.BlobBackend != BlobBackendLocal {
		t.Fatalf("unknown blob backend must fallback to local, got %q", cfg.BlobBackend)
	}
	if cfg.LLMProvider != LLMProviderOpenAI {
		t.Fatalf("explicit provider must be kept, got %q", cfg.LLMProvider)
	}
}

func TestNewConfig_PortOnlyBaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASE_URL", ":9090")
	t.Setenv("PUBLIC_URL", "https://lf.example/")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != ":9090" {
		t.Fatalf("BaseURL ':9090' must be accepted, got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:9090" {
		t.Fatalf("ServerURL expected 'http://localhost:9090', got %q", cfg.ServerURL)
	}
	if cfg.PublicURL != "https://lf.example" {
		t.Fatalf("PublicURL must drop trailing slash, got %q", cfg.PublicURL)
	}
}
