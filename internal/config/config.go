package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	Backend     BackendConfig
	Storage     StorageConfig
	Wizard      WizardConfig
	Preview     PreviewConfig
	Tracing     TracingConfig
	CatalogFile string
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type BackendConfig struct {
	BaseURL        string
	SaveConfigPath string // target of /api/save-config
	InvokePath     string // target of /api/invoke
}

type StorageConfig struct {
	Provider    string // "supabase" or "local"
	SupabaseURL string
	SupabaseKey string
	Bucket      string
	LocalDir    string
}

type WizardConfig struct {
	Store        string // "memory" or "redis"
	ErrorMarkers []string
}

type PreviewConfig struct {
	RowLimit int
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

// DefaultErrorMarkers are the phrases the analysis backend embeds in its
// free-text analysis when a run failed without setting a structured error.
var DefaultErrorMarkers = []string{"ERROR:", "CRITICAL ERROR:", "Error processing chunk"}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Backend: BackendConfig{
			BaseURL:        strings.TrimRight(getEnv("BACKEND_URL", "http://localhost:8000"), "/"),
			SaveConfigPath: getEnv("PROXY_SAVE_CONFIG_PATH", "/invoke"),
			InvokePath:     getEnv("PROXY_INVOKE_PATH", "/chat"),
		},
		Storage: StorageConfig{
			Provider:    getEnv("STORAGE_PROVIDER", "local"),
			SupabaseURL: getEnv("SUPABASE_URL", ""),
			SupabaseKey: getEnv("SUPABASE_KEY", ""),
			Bucket:      getEnv("STORAGE_BUCKET", "uploads"),
			LocalDir:    getEnv("LOCAL_UPLOAD_DIR", "./uploads"),
		},
		Wizard: WizardConfig{
			Store:        getEnv("WIZARD_STORE", "memory"),
			ErrorMarkers: getEnvAsList("SUBMISSION_ERROR_MARKERS", DefaultErrorMarkers),
		},
		Preview: PreviewConfig{
			RowLimit: getEnvAsInt("PREVIEW_ROW_LIMIT", 50),
		},
		Tracing: TracingConfig{
			Enabled:     getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "insights-console-be"),
		},
		CatalogFile: getEnv("CATALOG_FILE", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsList splits a comma separated variable, dropping blank entries.
func getEnvAsList(key string, fallback []string) []string {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
