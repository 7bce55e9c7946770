// Package config reads the relay's settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported generation backends
const (
	BackendOpenAI = "openai"
	BackendGemini = "gemini"
)

// Config holds the process configuration
type Config struct {
	Env  string
	Port string

	Backend       string
	Model         string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	GeminiAPIKey  string

	PresetsFile    string
	AllowedOrigins []string
	MaxBodyBytes   int64
	RequestTimeout time.Duration
	BackendTimeout time.Duration
}

// IsProduction reports whether ENV=production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// AllowAllOrigins reports whether CORS is open to any origin
func (c *Config) AllowAllOrigins() bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

// APIKey returns the credential for the selected backend
func (c *Config) APIKey() string {
	if c.Backend == BackendGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

// Load reads the given dotenv files (missing files are skipped, existing
// environment wins) and then the environment.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables
func FromEnv() (*Config, error) {
	cfg := &Config{
		Env:           os.Getenv("ENV"),
		Port:          getenv("PORT", "8080"),
		Model:         os.Getenv("REPLY_MODEL"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		PresetsFile:   os.Getenv("PRESETS_FILE"),
	}

	cfg.Backend = strings.ToLower(strings.TrimSpace(os.Getenv("REPLY_BACKEND")))
	if cfg.Backend == "" {
		cfg.Backend = defaultBackend(cfg)
	}
	if cfg.Backend != BackendOpenAI && cfg.Backend != BackendGemini {
		return nil, fmt.Errorf("REPLY_BACKEND must be %q or %q, got %q", BackendOpenAI, BackendGemini, cfg.Backend)
	}

	for _, o := range strings.Split(getenv("ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			if !validOrigin(o) {
				return nil, fmt.Errorf("ALLOWED_ORIGINS entry %q must be \"*\" or start with one of %s", o, strings.Join(originSchemes, ", "))
			}
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	var err error
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getenv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil || cfg.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("MAX_BODY_BYTES must be a positive integer")
	}
	if cfg.RequestTimeout, err = parseDuration("REQUEST_TIMEOUT", "30s"); err != nil {
		return nil, err
	}
	if cfg.BackendTimeout, err = parseDuration("BACKEND_TIMEOUT", "25s"); err != nil {
		return nil, err
	}
	// A backend call must fail before the write deadline drops the connection
	if cfg.RequestTimeout > 0 && (cfg.BackendTimeout == 0 || cfg.BackendTimeout >= cfg.RequestTimeout) {
		return nil, fmt.Errorf("BACKEND_TIMEOUT (%s) must be positive and shorter than REQUEST_TIMEOUT (%s)", cfg.BackendTimeout, cfg.RequestTimeout)
	}

	return cfg, nil
}

// originSchemes are the origin prefixes the CORS layer accepts
var originSchemes = []string{
	"http://", "https://",
	"chrome-extension://", "moz-extension://", "safari-extension://", "ms-browser-extension://",
}

func validOrigin(origin string) bool {
	if origin == "*" {
		return true
	}
	for _, scheme := range originSchemes {
		if strings.HasPrefix(origin, scheme) && len(origin) > len(scheme) {
			return true
		}
	}
	return false
}

// defaultBackend picks the backend whose key is present, OpenAI first
func defaultBackend(cfg *Config) string {
	if cfg.OpenAIAPIKey == "" && cfg.GeminiAPIKey != "" {
		return BackendGemini
	}
	return BackendOpenAI
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getenv(key, fallback))
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s must be a non-negative duration", key)
	}
	return d, nil
}
