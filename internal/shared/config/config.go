package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"careerhub/internal/shared/telemetry"
)

// EnvPrefix is the prefix of environment variables that override file settings.
const EnvPrefix = "CAREERHUB_"

// DefaultPath is the config file read when no path is given.
const DefaultPath = "careerhub.yaml"

// Config holds application configuration.
type Config struct {
	Env              string        `koanf:"env"`
	LogLevel         string        `koanf:"log_level"`
	Port             string        `koanf:"port"`
	APIPort          string        `koanf:"api_port"`
	CORSAllowOrigins []string      `koanf:"cors_allow_origins"`
	RemoteBaseURL    string        `koanf:"remote_base_url"`
	RemoteTimeout    time.Duration `koanf:"remote_timeout"`
	SearchDebounce   time.Duration `koanf:"search_debounce"`
	JobsCacheTTL     time.Duration `koanf:"jobs_cache_ttl"`
	SessionIdleTTL   time.Duration `koanf:"session_idle_ttl"`
	ATSAnalyzeDelay  time.Duration `koanf:"ats_analyze_delay"`
	RateLimitRPS     float64       `koanf:"rate_limit_rps"`
	RateLimitBurst   int           `koanf:"rate_limit_burst"`
	DatabaseURL      string        `koanf:"database_url"`
	ObjectStoreType  string        `koanf:"object_store"`
	LocalStoreDir    string        `koanf:"local_store_dir"`
	AWSRegion        string        `koanf:"aws_region"`
	S3Bucket         string        `koanf:"s3_bucket"`
	S3Prefix         string        `koanf:"s3_prefix"`
	SSEKMSKeyID      string        `koanf:"sse_kms_key_id"`
	LLMProvider      string        `koanf:"llm_provider"`
	LLMModel         string        `koanf:"llm_model"`

	// OpenAIAPIKey is read from OPENAI_API_KEY only and never from the config file.
	OpenAIAPIKey string `koanf:"-"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Env:              "dev",
		LogLevel:         "info",
		Port:             "8080",
		APIPort:          "5000",
		CORSAllowOrigins: []string{"http://localhost:5173"},
		RemoteBaseURL:    "http://localhost:5000/api",
		RemoteTimeout:    10 * time.Second,
		SearchDebounce:   300 * time.Millisecond,
		JobsCacheTTL:     time.Minute,
		SessionIdleTTL:   2 * time.Hour,
		ATSAnalyzeDelay:  3 * time.Second,
		RateLimitRPS:     2,
		RateLimitBurst:   10,
		ObjectStoreType:  "local",
		LocalStoreDir:    "./data",
		LLMProvider:      "rules",
		LLMModel:         "gpt-4o-mini",
	}
}

// Load reads defaults, then the YAML file at path if it exists, then CAREERHUB_*
// environment overrides. An empty path means DefaultPath.
func Load(path string) (Config, error) {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	if path == "" {
		path = DefaultPath
	}
	k := koanf.New(".")
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.Env = normalizeEnv(cfg.Env)
	cfg.ObjectStoreType = normalizeStoreType(cfg.ObjectStoreType)
	cfg.CORSAllowOrigins = splitAndTrim(strings.Join(cfg.CORSAllowOrigins, ","))
	cfg.RemoteBaseURL = strings.TrimRight(strings.TrimSpace(cfg.RemoteBaseURL), "/")

	if cfg.Env == "production" && cfg.DatabaseURL == "" {
		telemetry.Warn("config.database_url_missing", map[string]any{"env": cfg.Env})
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at runtime.
func (c Config) Validate() error {
	if c.RemoteBaseURL == "" {
		return fmt.Errorf("remote_base_url is required")
	}
	if !strings.HasPrefix(c.RemoteBaseURL, "http://") && !strings.HasPrefix(c.RemoteBaseURL, "https://") {
		return fmt.Errorf("remote_base_url %q must be an http(s) URL", c.RemoteBaseURL)
	}
	if c.RemoteTimeout <= 0 {
		return fmt.Errorf("remote_timeout must be positive")
	}
	if c.SearchDebounce < 0 || c.ATSAnalyzeDelay < 0 || c.JobsCacheTTL < 0 || c.SessionIdleTTL < 0 {
		return fmt.Errorf("durations must be non-negative")
	}
	if c.ObjectStoreType == "s3" && strings.TrimSpace(c.S3Bucket) == "" {
		return fmt.Errorf("object_store=s3 requires s3_bucket")
	}
	return nil
}

// IsDevLike reports whether the env tolerates missing infrastructure.
func (c Config) IsDevLike() bool {
	switch c.Env {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
