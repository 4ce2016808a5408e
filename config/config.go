package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Storage       StorageConfig
	Admin         AdminConfig
	Triggers      TriggersConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
	Cache         CacheConfig
	Query         QueryConfig
	RateLimit     RateLimitConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	AllowedOrigins []string
	MaxBodyBytes   int64
}

type DatabaseConfig struct {
	URL           string
	MaxConns      int32
	MinConns      int32
	WorkOffline   bool
	CACertPath    string
	MigrationsDir string
}

// StorageConfig points at an S3-compatible bucket used for export archives
type StorageConfig struct {
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Endpoint        string
	Region          string
	PublicBaseURL   string
	Prefix          string
}

// Enabled reports whether enough is configured to upload archives
func (s StorageConfig) Enabled() bool {
	return s.BucketName != "" && s.AccessKeyID != "" && s.SecretAccessKey != ""
}

type AdminConfig struct {
	JWTSecret     string
	JWTIssuer     string
	TokenTTLHours int
}

type TriggersConfig struct {
	LawyerLeadTriggerURL string
	TimeoutSeconds       int
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	ExporterEndpoint  string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

type CacheConfig struct {
	AnalyticsTTLSeconds int // 0 disables the analytics cache
}

type QueryConfig struct {
	LawyerDefaultLimit  int
	GeneralDefaultLimit int
	MaxLimit            int
}

type RateLimitConfig struct {
	SubmitPerMinute int
	ReadPerMinute   int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "5000")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("MAX_BODY_BYTES", 10<<20) // 10 MB, same as the original JSON parser
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_WORK_OFFLINE", false)
	v.SetDefault("MIGRATIONS_DIR", "migrations")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "/app/logs")
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "alloy:4318") // OTLP over HTTP
	v.SetDefault("O11Y_BE_SERVICE_NAME", "survey-api")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "legalpulse")
	v.SetDefault("O11Y_BE_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "survey-api")
	v.SetDefault("O11Y_PROFILING_SAMPLE_TYPES", "cpu,alloc_space,alloc_objects,goroutines,mutex,block")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)
	v.SetDefault("ANALYTICS_CACHE_TTL", 60)
	v.SetDefault("ADMIN_JWT_ISSUER", "survey-api")
	v.SetDefault("ADMIN_TOKEN_TTL_HOURS", 24)
	v.SetDefault("TRIGGER_TIMEOUT_SECONDS", 10)
	v.SetDefault("LAWYER_LIST_DEFAULT_LIMIT", 20)
	v.SetDefault("GENERAL_LIST_DEFAULT_LIMIT", 50)
	v.SetDefault("LIST_MAX_LIMIT", 200)
	v.SetDefault("RATE_LIMIT_SUBMIT_PER_MINUTE", 10)
	v.SetDefault("RATE_LIMIT_READ_PER_MINUTE", 100)
	v.SetDefault("STORAGE_REGION", "us-east-1")
	v.SetDefault("STORAGE_PREFIX", "exports")

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			AllowedOrigins: splitList(v.GetString("ALLOWED_CORS_ORIGINS")),
			MaxBodyBytes:   v.GetInt64("MAX_BODY_BYTES"),
		},
		Database: DatabaseConfig{
			URL:           v.GetString("DATABASE_URL"),
			MaxConns:      v.GetInt32("DB_MAX_CONNS"),
			MinConns:      v.GetInt32("DB_MIN_CONNS"),
			WorkOffline:   v.GetBool("DB_WORK_OFFLINE"),
			CACertPath:    v.GetString("DB_TLS_CA_PATH"),
			MigrationsDir: v.GetString("MIGRATIONS_DIR"),
		},
		Storage: StorageConfig{
			AccessKeyID:     v.GetString("STORAGE_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("STORAGE_SECRET_ACCESS_KEY"),
			BucketName:      v.GetString("STORAGE_BUCKET_NAME"),
			Endpoint:        v.GetString("STORAGE_ENDPOINT"),
			Region:          v.GetString("STORAGE_REGION"),
			PublicBaseURL:   v.GetString("STORAGE_PUBLIC_BASE_URL"),
			Prefix:          v.GetString("STORAGE_PREFIX"),
		},
		Admin: AdminConfig{
			JWTSecret:     v.GetString("ADMIN_JWT_SECRET"),
			JWTIssuer:     v.GetString("ADMIN_JWT_ISSUER"),
			TokenTTLHours: v.GetInt("ADMIN_TOKEN_TTL_HOURS"),
		},
		Triggers: TriggersConfig{
			LawyerLeadTriggerURL: v.GetString("LAWYER_LEAD_TRIGGER_URL"),
			TimeoutSeconds:       v.GetInt("TRIGGER_TIMEOUT_SECONDS"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint:  v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_BE_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_BE_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
		Cache: CacheConfig{
			AnalyticsTTLSeconds: v.GetInt("ANALYTICS_CACHE_TTL"),
		},
		Query: QueryConfig{
			LawyerDefaultLimit:  v.GetInt("LAWYER_LIST_DEFAULT_LIMIT"),
			GeneralDefaultLimit: v.GetInt("GENERAL_LIST_DEFAULT_LIMIT"),
			MaxLimit:            v.GetInt("LIST_MAX_LIMIT"),
		},
		RateLimit: RateLimitConfig{
			SubmitPerMinute: v.GetInt("RATE_LIMIT_SUBMIT_PER_MINUTE"),
			ReadPerMinute:   v.GetInt("RATE_LIMIT_READ_PER_MINUTE"),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// splitList parses a comma-separated value, dropping blanks
func splitList(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	// Database configuration
	if !c.Database.WorkOffline && c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required when not in offline mode")
	}
	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("DB_MAX_CONNS must not be lower than DB_MIN_CONNS")
	}

	// Server configuration
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_CORS_ORIGINS is required")
	}

	// Storage is optional, but a bucket without credentials is a misconfiguration
	if c.Storage.BucketName != "" && !c.Storage.Enabled() {
		return fmt.Errorf("STORAGE_ACCESS_KEY_ID and STORAGE_SECRET_ACCESS_KEY are required when STORAGE_BUCKET_NAME is set")
	}

	if c.Query.MaxLimit <= 0 {
		return fmt.Errorf("LIST_MAX_LIMIT must be positive")
	}
	if c.Query.LawyerDefaultLimit <= 0 || c.Query.GeneralDefaultLimit <= 0 {
		return fmt.Errorf("list default limits must be positive")
	}

	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		return fmt.Errorf("O11Y_PROFILING_ENDPOINT is required when profiling is enabled")
	}

	return nil
}

// AdminAuthEnabled reports whether admin routes require a bearer token
func (c *Config) AdminAuthEnabled() bool {
	return c.Admin.JWTSecret != ""
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}
