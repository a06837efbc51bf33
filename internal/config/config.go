// internal/config/config.go
package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	EnvDataDir     = "LITERARY_AGENT_DATA_DIR"
	EnvAddr        = "LITERARY_AGENT_ADDR"
	EnvMetricsAddr = "LITERARY_AGENT_METRICS_ADDR"
	EnvHTTPTimeout = "LITERARY_AGENT_HTTP_TIMEOUT"
)

// Config carries the process-wide settings. Everything comes from the
// environment with working defaults so the CLI runs with zero setup.
type Config struct {
	DataDir     string
	Addr        string
	MetricsAddr string
	HTTPTimeout time.Duration
}

func Load() Config {
	cfg := Config{
		DataDir:     envOr(EnvDataDir, defaultDataDir()),
		Addr:        envOr(EnvAddr, ":8080"),
		MetricsAddr: os.Getenv(EnvMetricsAddr),
		HTTPTimeout: 15 * time.Second,
	}

	if raw := os.Getenv(EnvHTTPTimeout); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.HTTPTimeout = d
		}
	}

	return cfg
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".openclaw", "literary-agent")
	}
	return filepath.Join(home, ".openclaw", "literary-agent")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c Config) ContactsDir() string  { return filepath.Join(c.DataDir, "contacts") }
func (c Config) ReportsDir() string   { return filepath.Join(c.DataDir, "reports") }
func (c Config) CampaignsDir() string { return filepath.Join(c.DataDir, "campaigns") }

func (c Config) ContactsFile() string    { return filepath.Join(c.ContactsDir(), "libraries.csv") }
func (c Config) CampaignLogFile() string { return filepath.Join(c.ContactsDir(), "campaigns.json") }
func (c Config) KPIFile() string         { return filepath.Join(c.ReportsDir(), "kpi_history.json") }

// Optional YAML catalogs. Absent files mean built-in defaults.
func (c Config) TemplatesFile() string   { return filepath.Join(c.DataDir, "templates.yaml") }
func (c Config) BooksFile() string       { return filepath.Join(c.DataDir, "books.yaml") }
func (c Config) CompetitorsFile() string { return filepath.Join(c.DataDir, "competitors.yaml") }

// EnsureDirs creates the on-disk layout the repositories expect.
func (c Config) EnsureDirs() error {
	for _, dir := range []string{c.ContactsDir(), c.ReportsDir(), c.CampaignsDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
