package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Gemini backend modes
const (
	ModeAPIKey = "api_key"
	ModeVertex = "vertex"
)

type ServerConfig struct {
	Port       int    `toml:"port"`
	UILanguage string `toml:"ui_language"` // staff-facing labels
}

type GeminiConfig struct {
	Mode     string `toml:"mode"` // "api_key" or "vertex"; empty picks from credentials
	APIKey   string `toml:"api_key"`
	Project  string `toml:"project"`
	Location string `toml:"location"`
	Model    string `toml:"model"`
}

type BreakerConfig struct {
	Enabled     bool     `toml:"enabled"`
	MaxFailures uint32   `toml:"max_failures"`
	OpenTimeout Duration `toml:"open_timeout"`
}

type RateLimitConfig struct {
	Requests int      `toml:"requests"`
	Window   Duration `toml:"window"`
}

type StorageConfig struct {
	DataDir string `toml:"data_dir"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type MenuConfig struct {
	RestaurantName string   `toml:"restaurant_name"`
	Tagline        string   `toml:"tagline"`
	Strategy       string   `toml:"strategy"` // "batch" or "per_line"
	Concurrency    int      `toml:"concurrency"`
	PrintTTL       Duration `toml:"print_ttl"`
}

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Gemini    GeminiConfig    `toml:"gemini"`
	Breaker   BreakerConfig   `toml:"breaker"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Storage   StorageConfig   `toml:"storage"`
	Log       LogConfig       `toml:"log"`
	Menu      MenuConfig      `toml:"menu"`
}

// Duration lets toml files carry values like "30s"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Default returns the configuration used when no file or environment is present
func Default() *Config {
	var config Config

	config.Server.Port = 3000
	config.Server.UILanguage = "ja"

	config.Gemini.Model = "gemini-1.5-flash"
	config.Gemini.Location = "us-central1"

	config.Breaker.Enabled = true
	config.Breaker.MaxFailures = 5
	config.Breaker.OpenTimeout = Duration{30 * time.Second}

	config.RateLimit.Requests = 30
	config.RateLimit.Window = Duration{time.Minute}

	config.Storage.DataDir = "./data"
	config.Log.Level = "info"

	config.Menu.RestaurantName = "Il Giardino"
	config.Menu.Tagline = "Authentic Italian Cuisine • Est. 1995"
	config.Menu.Strategy = "batch"
	config.Menu.Concurrency = 4
	config.Menu.PrintTTL = Duration{time.Hour}

	return &config
}

// LoadConfig reads the toml file on top of the defaults, then applies environment
// overrides (a .env file is loaded first when present). A missing file is not an error.
func LoadConfig(filepath string) (*Config, error) {
	config := Default()

	if filepath != "" {
		if _, err := toml.DecodeFile(filepath, config); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", filepath, err)
		}
	}

	_ = godotenv.Load()
	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnvInt("PORT", c.Server.Port)
	c.Server.UILanguage = getEnv("UI_LANGUAGE", c.Server.UILanguage)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Storage.DataDir = getEnv("DATA_DIR", c.Storage.DataDir)

	c.Gemini.Mode = getEnv("GEMINI_MODE", c.Gemini.Mode)
	c.Gemini.APIKey = getEnv("GOOGLE_AI_API_KEY", c.Gemini.APIKey)
	c.Gemini.Model = getEnv("GEMINI_MODEL", c.Gemini.Model)
	c.Gemini.Project = getEnv("GOOGLE_CLOUD_PROJECT", c.Gemini.Project)
	c.Gemini.Location = getEnv("GOOGLE_CLOUD_LOCATION", c.Gemini.Location)
}

// Validate checks values that would otherwise fail later in confusing ways.
// Missing Gemini credentials are allowed: the gateway runs unconfigured.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}

	switch c.Gemini.Mode {
	case "", ModeAPIKey, ModeVertex:
	default:
		return fmt.Errorf("unknown gemini mode %q", c.Gemini.Mode)
	}

	switch c.Menu.Strategy {
	case "batch", "per_line":
	default:
		return fmt.Errorf("unknown menu strategy %q", c.Menu.Strategy)
	}

	if c.RateLimit.Requests <= 0 || c.RateLimit.Window.Duration <= 0 {
		return fmt.Errorf("rate_limit requests and window must be positive")
	}

	return nil
}

// ResolvedGeminiMode returns the backend to use. An explicit mode wins; otherwise a
// project id selects Vertex AI and anything else falls back to the API key mode.
func (c *GeminiConfig) ResolvedGeminiMode() string {
	if c.Mode != "" {
		return c.Mode
	}
	if c.Project != "" && c.APIKey == "" {
		return ModeVertex
	}
	return ModeAPIKey
}

// Configured reports whether the selected backend has its credentials
func (c *GeminiConfig) Configured() bool {
	switch c.ResolvedGeminiMode() {
	case ModeVertex:
		return c.Project != "" && c.Location != ""
	default:
		return c.APIKey != ""
	}
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
