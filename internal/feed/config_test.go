package feed

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agent.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
api_url: http://localhost:8080
secret: s1
redis_url: redis://localhost:6379/0
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Interval != defaultInterval {
		t.Errorf("interval = %v, want default %v", cfg.Interval, defaultInterval)
	}
	if cfg.PageLimit != defaultPageLimit {
		t.Errorf("page limit = %d, want default %d", cfg.PageLimit, defaultPageLimit)
	}
	if cfg.Notifier != "log" {
		t.Errorf("notifier = %q, want log", cfg.Notifier)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
api_url: http://localhost:8080
secret: s1
redis_url: redis://localhost:6379/0
interval: 30s
page_limit: 10
notifier: smtp
smtp:
  host: mail.example.com
  port: 587
  from: agent@example.com
  to: sales@example.com
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Interval != 30*time.Second {
		t.Errorf("interval = %v, want 30s", cfg.Interval)
	}
	if cfg.PageLimit != 10 {
		t.Errorf("page limit = %d, want 10", cfg.PageLimit)
	}
	if cfg.SMTP.Host != "mail.example.com" {
		t.Errorf("smtp host = %q", cfg.SMTP.Host)
	}
}

func TestLoadConfigRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing api_url", "secret: s1\nredis_url: redis://localhost:6379/0\n"},
		{"missing secret", "api_url: http://localhost:8080\nredis_url: redis://localhost:6379/0\n"},
		{"missing redis_url", "api_url: http://localhost:8080\nsecret: s1\n"},
		{"unknown notifier", "api_url: http://x\nsecret: s1\nredis_url: redis://x\nnotifier: carrier-pigeon\n"},
		{"smtp without host", "api_url: http://x\nsecret: s1\nredis_url: redis://x\nnotifier: smtp\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := LoadConfig(path); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}
