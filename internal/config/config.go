package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/weddingtools/seating-planner/internal/ingest"
	"github.com/weddingtools/seating-planner/internal/seating"
)

const (
	defaultPort           = "8080"
	defaultRateLimitRPS   = 25.0
	defaultRateLimitBurst = 50
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	Port                 string
	TableSize            int
	CategoryOrder        seating.OrderPolicy
	Columns              ingest.Columns
	ShutdownGracePeriod  time.Duration
	ReadHeaderTimeout    time.Duration
	WriteTimeout         time.Duration
	IdleTimeout          time.Duration
	EnableRequestLogging bool
	RateLimitRPS         float64
	RateLimitBurst       int
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	Port                 string          `yaml:"port"`
	TableSize            int             `yaml:"table_size"`
	CategoryOrder        string          `yaml:"category_order"`
	Columns              *ingest.Columns `yaml:"columns"`
	ShutdownGracePeriod  string          `yaml:"shutdown_grace_period"`
	ReadHeaderTimeout    string          `yaml:"read_header_timeout"`
	WriteTimeout         string          `yaml:"write_timeout"`
	IdleTimeout          string          `yaml:"idle_timeout"`
	EnableRequestLogging bool            `yaml:"enable_request_logging"`
	RateLimit            yamlRateLimit   `yaml:"rate_limit"`
}

// yamlRateLimit represents the rate limit section in YAML.
type yamlRateLimit struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile     string
	Port           *string
	TableSize      *int
	CategoryOrder  *string
	RateLimitRPS   *float64
	RateLimitBurst *int
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Load from YAML file if specified
	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	// Apply environment variables (override YAML)
	applyEnvConfig(&cfg)

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		if err := applyCLIOverrides(&cfg, overrides); err != nil {
			return Config{}, err
		}
	}

	// Validate final configuration
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Port:                 defaultPort,
		TableSize:            seating.DefaultCapacity,
		CategoryOrder:        seating.OrderFirstSeen,
		Columns:              ingest.DefaultColumns(),
		ShutdownGracePeriod:  10 * time.Second,
		ReadHeaderTimeout:    5 * time.Second,
		WriteTimeout:         30 * time.Second,
		IdleTimeout:          60 * time.Second,
		EnableRequestLogging: true,
		RateLimitRPS:         defaultRateLimitRPS,
		RateLimitBurst:       defaultRateLimitBurst,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.Port != "" {
		cfg.Port = yamlCfg.Port
	}

	if yamlCfg.TableSize > 0 {
		cfg.TableSize = yamlCfg.TableSize
	}

	if yamlCfg.CategoryOrder != "" {
		if policy, err := seating.ParseOrderPolicy(yamlCfg.CategoryOrder); err == nil {
			cfg.CategoryOrder = policy
		}
	}

	if yamlCfg.Columns != nil {
		applyColumns(&cfg.Columns, *yamlCfg.Columns)
	}

	if yamlCfg.ShutdownGracePeriod != "" {
		if d, err := time.ParseDuration(yamlCfg.ShutdownGracePeriod); err == nil {
			cfg.ShutdownGracePeriod = d
		}
	}

	if yamlCfg.ReadHeaderTimeout != "" {
		if d, err := time.ParseDuration(yamlCfg.ReadHeaderTimeout); err == nil {
			cfg.ReadHeaderTimeout = d
		}
	}

	if yamlCfg.WriteTimeout != "" {
		if d, err := time.ParseDuration(yamlCfg.WriteTimeout); err == nil {
			cfg.WriteTimeout = d
		}
	}

	if yamlCfg.IdleTimeout != "" {
		if d, err := time.ParseDuration(yamlCfg.IdleTimeout); err == nil {
			cfg.IdleTimeout = d
		}
	}

	cfg.EnableRequestLogging = yamlCfg.EnableRequestLogging

	if yamlCfg.RateLimit.RPS >= 0 {
		cfg.RateLimitRPS = yamlCfg.RateLimit.RPS
	}

	if yamlCfg.RateLimit.Burst >= 0 {
		cfg.RateLimitBurst = yamlCfg.RateLimit.Burst
	}
}

// applyColumns overlays non-empty column names from the YAML columns
// section onto the defaults, so a config file only needs to name the
// headers that differ from the stock export.
func applyColumns(dst *ingest.Columns, src ingest.Columns) {
	overlay := func(dst *string, src string) {
		if strings.TrimSpace(src) != "" {
			*dst = src
		}
	}
	overlay(&dst.FirstName, src.FirstName)
	overlay(&dst.LastName, src.LastName)
	overlay(&dst.RSVP, src.RSVP)
	overlay(&dst.Tags, src.Tags)
	overlay(&dst.Party, src.Party)
	overlay(&dst.Meal, src.Meal)
	overlay(&dst.BabyChair, src.BabyChair)
	overlay(&dst.CarPark, src.CarPark)
	overlay(&dst.OtherRequests, src.OtherRequests)
	overlay(&dst.Comments, src.Comments)
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		cfg.Port = port
	}

	if raw := strings.TrimSpace(os.Getenv("TABLE_SIZE")); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.TableSize = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("CATEGORY_ORDER")); raw != "" {
		if policy, err := seating.ParseOrderPolicy(raw); err == nil {
			cfg.CategoryOrder = policy
		}
	}

	if rps := strings.TrimSpace(os.Getenv("RATE_LIMIT_RPS")); rps != "" {
		if value, err := strconv.ParseFloat(rps, 64); err == nil && value >= 0 {
			cfg.RateLimitRPS = value
		}
	}

	if burst := strings.TrimSpace(os.Getenv("RATE_LIMIT_BURST")); burst != "" {
		if value, err := strconv.Atoi(burst); err == nil && value >= 0 {
			cfg.RateLimitBurst = value
		}
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) error {
	if overrides.Port != nil && *overrides.Port != "" {
		cfg.Port = *overrides.Port
	}

	if overrides.TableSize != nil && *overrides.TableSize > 0 {
		cfg.TableSize = *overrides.TableSize
	}

	if overrides.CategoryOrder != nil && *overrides.CategoryOrder != "" {
		policy, err := seating.ParseOrderPolicy(*overrides.CategoryOrder)
		if err != nil {
			return fmt.Errorf("parse category order: %w", err)
		}
		cfg.CategoryOrder = policy
	}

	if overrides.RateLimitRPS != nil && *overrides.RateLimitRPS >= 0 {
		cfg.RateLimitRPS = *overrides.RateLimitRPS
	}

	if overrides.RateLimitBurst != nil && *overrides.RateLimitBurst >= 0 {
		cfg.RateLimitBurst = *overrides.RateLimitBurst
	}

	return nil
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.TableSize <= 0 {
		return fmt.Errorf("table size must be a positive integer")
	}
	if _, err := seating.ParseOrderPolicy(string(cfg.CategoryOrder)); err != nil {
		return err
	}
	if cfg.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be >= 0")
	}
	if cfg.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be >= 0")
	}
	return nil
}
