package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the remotefinder web front-end.
type Config struct {
	Server  ServerConfig
	Feed    FeedConfig
	Display DisplayConfig
}

// ServerConfig controls the inbound HTTP listener.
type ServerConfig struct {
	Addr            string        // listen address, e.g. ":8080"
	Mode            string        // gin mode: "debug", "release" or "test"
	ShutdownTimeout time.Duration // grace period for in-flight requests
}

// FeedConfig describes the upstream job feed.
type FeedConfig struct {
	URL       string
	UserAgent string
	Timeout   time.Duration // bound on each outbound request
	RateLimit float64       // upstream requests per second, 0 disables throttling
	Burst     int
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	HomepageLimit int // jobs shown when no search or category is given
}

const (
	defaultAddr            = ":8080"
	defaultMode            = "release"
	defaultShutdownTimeout = 5 * time.Second
	defaultFeedURL         = "https://remoteok.com/api"
	defaultUserAgent       = "remote-finder"
	defaultFeedTimeout     = 10 * time.Second
	defaultRateLimit       = 1.0
	defaultBurst           = 2
	defaultHomepageLimit   = 10
)

// rawConfig is used for YAML unmarshaling (snake_case fields and duration as string).
type rawConfig struct {
	Server  rawServerConfig  `yaml:"server"`
	Feed    rawFeedConfig    `yaml:"feed"`
	Display rawDisplayConfig `yaml:"display"`
}

type rawServerConfig struct {
	Addr            string `yaml:"addr"`
	Mode            string `yaml:"mode"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

type rawFeedConfig struct {
	URL       string   `yaml:"url"`
	UserAgent string   `yaml:"user_agent"`
	Timeout   string   `yaml:"timeout"`
	RateLimit *float64 `yaml:"rate_limit"`
	Burst     *int     `yaml:"burst"`
}

type rawDisplayConfig struct {
	HomepageLimit *int `yaml:"homepage_limit"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            defaultAddr,
			Mode:            defaultMode,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Feed: FeedConfig{
			URL:       defaultFeedURL,
			UserAgent: defaultUserAgent,
			Timeout:   defaultFeedTimeout,
			RateLimit: defaultRateLimit,
			Burst:     defaultBurst,
		},
		Display: DisplayConfig{
			HomepageLimit: defaultHomepageLimit,
		},
	}
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
// Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// LoadOrDefault behaves like Load but returns Default when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg = Default()
		if err := validate(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return cfg, err
}

// Parse expands environment variables in data, decodes it, and validates the result.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()

	if raw.Server.Addr != "" {
		cfg.Server.Addr = raw.Server.Addr
	}
	if raw.Server.Mode != "" {
		cfg.Server.Mode = raw.Server.Mode
	}
	if raw.Server.ShutdownTimeout != "" {
		d, err := time.ParseDuration(raw.Server.ShutdownTimeout)
		if err != nil {
			return nil, fmt.Errorf("parse server.shutdown_timeout %q: %w", raw.Server.ShutdownTimeout, err)
		}
		cfg.Server.ShutdownTimeout = d
	}

	if raw.Feed.URL != "" {
		cfg.Feed.URL = raw.Feed.URL
	}
	if raw.Feed.UserAgent != "" {
		cfg.Feed.UserAgent = raw.Feed.UserAgent
	}
	if raw.Feed.Timeout != "" {
		d, err := time.ParseDuration(raw.Feed.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse feed.timeout %q: %w", raw.Feed.Timeout, err)
		}
		cfg.Feed.Timeout = d
	}
	if raw.Feed.RateLimit != nil {
		cfg.Feed.RateLimit = *raw.Feed.RateLimit
	}
	if raw.Feed.Burst != nil {
		cfg.Feed.Burst = *raw.Feed.Burst
	}

	if raw.Display.HomepageLimit != nil {
		cfg.Display.HomepageLimit = *raw.Display.HomepageLimit
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	switch cfg.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be one of debug, release, test, got %q", cfg.Server.Mode)
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %v", cfg.Server.ShutdownTimeout)
	}

	u, err := url.Parse(cfg.Feed.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("feed.url must be an absolute http(s) URL, got %q", cfg.Feed.URL)
	}
	if cfg.Feed.Timeout <= 0 {
		return fmt.Errorf("feed.timeout must be positive, got %v", cfg.Feed.Timeout)
	}
	if cfg.Feed.RateLimit < 0 {
		return fmt.Errorf("feed.rate_limit must not be negative, got %v", cfg.Feed.RateLimit)
	}
	if cfg.Feed.RateLimit > 0 && cfg.Feed.Burst < 1 {
		return fmt.Errorf("feed.burst must be at least 1 when feed.rate_limit is set, got %d", cfg.Feed.Burst)
	}

	if cfg.Display.HomepageLimit < 1 {
		return fmt.Errorf("display.homepage_limit must be at least 1, got %d", cfg.Display.HomepageLimit)
	}

	return nil
}
