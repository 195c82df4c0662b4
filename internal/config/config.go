package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/collector"
	"github.com/cybergeekgyan/BuffetIndicatorApp/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	WorldBank struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		PauseMS        int    `yaml:"pause_ms"`
	} `yaml:"worldbank"`
	Data struct {
		Countries []string `yaml:"countries"`
		StartYear int      `yaml:"start_year"`
		EndYear   int      `yaml:"end_year"` // 0 means current year
	} `yaml:"data"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is fine; env and defaults
// carry the rest.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("WB_BASE_URL"); v != "" {
		cfg.WorldBank.BaseURL = v
	}
	if v := os.Getenv("WB_PAUSE_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.WorldBank.PauseMS = n
		}
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.WorldBank.TimeoutSeconds == 0 {
		cfg.WorldBank.TimeoutSeconds = 20
	}
	if cfg.WorldBank.PauseMS == 0 {
		cfg.WorldBank.PauseMS = 200
	}
	if len(cfg.Data.Countries) == 0 {
		cfg.Data.Countries = []string{"United States", "China", "Japan"}
	}
	if cfg.Data.StartYear == 0 {
		cfg.Data.StartYear = collector.MinYear
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 0 7 * * *"
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if len(c.Data.Countries) == 0 {
		return fmt.Errorf("data.countries must not be empty")
	}
	for _, name := range c.Data.Countries {
		if _, ok := model.CountryCode(name); !ok {
			return fmt.Errorf("data.countries: unsupported country %q", name)
		}
	}
	if c.Data.StartYear < collector.MinYear {
		return fmt.Errorf("data.start_year must be %d or later", collector.MinYear)
	}
	if c.Data.EndYear != 0 && c.Data.EndYear < c.Data.StartYear {
		return fmt.Errorf("data.end_year must not precede data.start_year")
	}
	if c.WorldBank.TimeoutSeconds <= 0 {
		return fmt.Errorf("worldbank.timeout_seconds must be positive")
	}
	if c.WorldBank.PauseMS < 0 {
		return fmt.Errorf("worldbank.pause_ms must not be negative")
	}
	return nil
}
