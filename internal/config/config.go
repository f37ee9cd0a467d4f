package config

import (
	"flag"
	"os"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN string   `env:"DATABASE_URI"`
	PublicURL   string   `env:"PUBLIC_URL"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
	MaxUploadMB int      `env:"MAX_UPLOAD_MB"`
	LogLevel    string   `env:"LOG_LEVEL"`
	LogJSON     bool     `env:"LOG_JSON"`

	// Blob store
	BlobBackend     string `env:"BLOB_BACKEND"`
	BlobDir         string `env:"BLOB_DIR"`
	S3Bucket        string `env:"S3_BUCKET"`
	AWSRegion       string `env:"AWS_REGION"`
	S3PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`

	// LLM
	LLMProvider  string `env:"LLM_PROVIDER"`
	LLMModel     string `env:"LLM_MODEL"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`

	// Email
	ResendAPIKey string `env:"RESEND_API_KEY"`
	SenderEmail  string `env:"SENDER_EMAIL"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL string `env:"-"`
	Version   bool   `env:"-"` // show client version and exit (flag only)
}

const (
	BlobBackendLocal = "local"
	BlobBackendS3    = "s3"

	LLMProviderGemini = "gemini"
	LLMProviderOpenAI = "openai"
	LLMProviderNone   = "none"
)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги переопределяют значения из env
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (пусто - in-memory)")
	flag.StringVar(&cfg.PublicURL, "public-url", cfg.PublicURL, "публичный адрес сервера для ссылок на локальные файлы")
	flag.StringVar(&cfg.BlobBackend, "blob", cfg.BlobBackend, "хранилище изображений: local или s3")
	flag.StringVar(&cfg.BlobDir, "blob-dir", cfg.BlobDir, "каталог для локального хранилища изображений")
	flag.StringVar(&cfg.LLMProvider, "llm", cfg.LLMProvider, "LLM-провайдер: gemini, openai или none")
	flag.IntVar(&cfg.MaxUploadMB, "max-upload-mb", cfg.MaxUploadMB, "максимальный размер запроса с изображением, МБ")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "уровень логирования")
	flag.BoolVar(&cfg.LogJSON, "log-json", cfg.LogJSON, "production-логгер в формате JSON")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "address:port of the LostFound server")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)

func (cfg *Config) applyDefaults() {
	// BaseURL: только "address:port" (без схемы и пути), иначе значение по умолчанию
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8000"
	}

	scheme := "http://"
	if cfg.EnableHTTPS {
		scheme = "https://"
	}
	host := cfg.BaseURL
	if strings.HasPrefix(host, ":") {
		host = "localhost" + host
	}
	cfg.ServerURL = scheme + host
	if cfg.PublicURL == "" {
		cfg.PublicURL = cfg.ServerURL
	}
	cfg.PublicURL = strings.TrimRight(cfg.PublicURL, "/")

	origins := make([]string, 0, len(cfg.CORSOrigins))
	for _, o := range cfg.CORSOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cfg.CORSOrigins = origins

	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = 10
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	switch cfg.BlobBackend {
	case BlobBackendLocal, BlobBackendS3:
	default:
		cfg.BlobBackend = BlobBackendLocal
	}
	if cfg.BlobDir == "" {
		cfg.BlobDir = "uploads"
	}
	if cfg.AWSRegion == "" {
		cfg.AWSRegion = "us-east-1"
	}

	switch cfg.LLMProvider {
	case LLMProviderGemini, LLMProviderOpenAI, LLMProviderNone:
	default:
		cfg.LLMProvider = LLMProviderNone
		if cfg.GeminiAPIKey == "" && os.Getenv("GOOGLE_API_KEY") != "" {
			cfg.GeminiAPIKey = os.Getenv("GOOGLE_API_KEY")
		}
		if cfg.GeminiAPIKey != "" {
			cfg.LLMProvider = LLMProviderGemini
		}
	}

	if cfg.SenderEmail == "" {
		cfg.SenderEmail = "onboarding@resend.dev"
	}
}
