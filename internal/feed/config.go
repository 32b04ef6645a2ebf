package feed

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the agent configuration, loaded from a YAML file.
type Config struct {
	// APIURL is the base URL of the lead store API, e.g. http://host:8080.
	APIURL string `yaml:"api_url"`
	// Secret is the shared webhook secret sent on read requests.
	Secret string `yaml:"secret"`
	// RedisURL locates the cursor store, e.g. redis://localhost:6379/0.
	RedisURL string `yaml:"redis_url"`

	Interval  time.Duration `yaml:"interval"`
	PageLimit int           `yaml:"page_limit"`

	// Notifier selects the delivery channel: "log" or "smtp".
	Notifier string       `yaml:"notifier"`
	SMTP     SMTPSettings `yaml:"smtp"`
}

// LoadConfig reads and validates the agent configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{
		Interval:  defaultInterval,
		PageLimit: defaultPageLimit,
		Notifier:  "log",
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.APIURL == "" {
		return nil, fmt.Errorf("api_url is required")
	}
	if cfg.Secret == "" {
		return nil, fmt.Errorf("secret is required")
	}
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("redis_url is required")
	}
	switch cfg.Notifier {
	case "log":
	case "smtp":
		if cfg.SMTP.Host == "" || cfg.SMTP.From == "" || cfg.SMTP.To == "" {
			return nil, fmt.Errorf("smtp notifier requires host, from, and to")
		}
	default:
		return nil, fmt.Errorf("unknown notifier %q", cfg.Notifier)
	}

	return cfg, nil
}
