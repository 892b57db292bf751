package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Trading struct {
		// Windows is the textual window list, e.g. "09:30-11:30,13:00-15:00".
		Windows       string    `yaml:"windows"`
		ATRMultiplier float64   `yaml:"atr_multiplier"`
		RMultiples    []float64 `yaml:"r_multiples"`
		// Account and RiskPercent prefill sizing when the trader leaves
		// those questionnaire fields blank. Zero means no default.
		Account     float64 `yaml:"account"`
		RiskPercent float64 `yaml:"risk_percent"`
	} `yaml:"trading"`
	Reminders struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"reminders"`
	LogLevel string `yaml:"log_level"`
	Proxy    string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
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
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("TRADING_WINDOWS"); v != "" {
		cfg.Trading.Windows = v
	}
	if v := os.Getenv("ATR_MULTIPLIER"); v != "" {
		if mult, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Trading.ATRMultiplier = mult
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	// Defaults
	if cfg.Trading.ATRMultiplier == 0 {
		cfg.Trading.ATRMultiplier = 1.5
	}
	if len(cfg.Trading.RMultiples) == 0 {
		cfg.Trading.RMultiples = []float64{1.0, 1.5, 2.0}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// Validate checks the fields every mode needs.
func (c *Config) Validate() error {
	if c.Trading.ATRMultiplier <= 0 {
		return fmt.Errorf("trading.atr_multiplier must be positive")
	}
	for _, r := range c.Trading.RMultiples {
		if r <= 0 {
			return fmt.Errorf("trading.r_multiples must all be positive, got %v", r)
		}
	}
	if c.Trading.RiskPercent < 0 || c.Trading.Account < 0 {
		return fmt.Errorf("trading.account and trading.risk_percent must not be negative")
	}
	return nil
}

// ValidateWatch checks the extra fields watch mode needs.
func (c *Config) ValidateWatch() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required in watch mode")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required in watch mode")
	}
	if c.Trading.Windows == "" {
		return fmt.Errorf("trading.windows is required in watch mode")
	}
	return nil
}
