package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	Analyzer AnalyzerConfig
	Store    StoreConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// UploadConfig holds file upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxFileSizeBytes returns the upload size ceiling in bytes.
func (u *UploadConfig) MaxFileSizeBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// AnalyzerConfig holds the defaults used to seed the settings store and the
// outbound request timeout for the analysis client.
type AnalyzerConfig struct {
	DefaultBaseURL     string  `mapstructure:"default_base_url"`
	DefaultModel       string  `mapstructure:"default_model"`
	DefaultTemperature float64 `mapstructure:"default_temperature"`
	DefaultMaxTokens   int     `mapstructure:"default_max_tokens"`
	TimeoutSecs        int     `mapstructure:"timeout_secs"`
}

// StoreConfig holds settings-store persistence options.
type StoreConfig struct {
	Dir string `mapstructure:"dir"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the RESUMELENS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RESUMELENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)

	// Analyzer defaults
	v.SetDefault("analyzer.default_base_url", "https://api.openai.com/v1")
	v.SetDefault("analyzer.default_model", "gpt-4o-mini")
	v.SetDefault("analyzer.default_temperature", 0.7)
	v.SetDefault("analyzer.default_max_tokens", 4096)
	v.SetDefault("analyzer.timeout_secs", 120)

	// Store defaults
	v.SetDefault("store.dir", defaultStoreDir())

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                  "RESUMELENS_SERVER_PORT",
		"server.read_timeout":          "RESUMELENS_SERVER_READ_TIMEOUT",
		"server.write_timeout":         "RESUMELENS_SERVER_WRITE_TIMEOUT",
		"server.environment":           "RESUMELENS_SERVER_ENVIRONMENT",
		"upload.max_file_size_mb":      "RESUMELENS_UPLOAD_MAX_FILE_SIZE_MB",
		"analyzer.default_base_url":    "RESUMELENS_ANALYZER_DEFAULT_BASE_URL",
		"analyzer.default_model":       "RESUMELENS_ANALYZER_DEFAULT_MODEL",
		"analyzer.default_temperature": "RESUMELENS_ANALYZER_DEFAULT_TEMPERATURE",
		"analyzer.default_max_tokens":  "RESUMELENS_ANALYZER_DEFAULT_MAX_TOKENS",
		"analyzer.timeout_secs":        "RESUMELENS_ANALYZER_TIMEOUT_SECS",
		"store.dir":                    "RESUMELENS_STORE_DIR",
		"cors.allowed_origins":         "RESUMELENS_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if RESUMELENS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("RESUMELENS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.Analyzer = AnalyzerConfig{
		DefaultBaseURL:     v.GetString("analyzer.default_base_url"),
		DefaultModel:       v.GetString("analyzer.default_model"),
		DefaultTemperature: v.GetFloat64("analyzer.default_temperature"),
		DefaultMaxTokens:   v.GetInt("analyzer.default_max_tokens"),
		TimeoutSecs:        v.GetInt("analyzer.timeout_secs"),
	}
	cfg.Store = StoreConfig{
		Dir: v.GetString("store.dir"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}

func defaultStoreDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".resumelens"
	}
	return base + string(os.PathSeparator) + "resumelens"
}
