package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	TransportTelegram = "telegram"
	TransportSlack    = "slack"

	// EnvPrefix prefixes every environment override; "__" separates nesting
	// levels, e.g. REMINDER_STORE__DRIVER=sqlite.
	EnvPrefix = "REMINDER_"
	// EnvConfigFile names the YAML file to load when no -config flag is given.
	EnvConfigFile = "REMINDER_CONFIG"
)

// variables understood before the REMINDER_ prefix existed
var legacyEnv = map[string]string{
	"TELEGRAM_BOT_TOKEN":   "telegram.bot_token",
	"SLACK_BOT_TOKEN":      "slack.bot_token",
	"SLACK_SIGNING_SECRET": "slack.signing_secret",
	"DATABASE_PATH":        "store.path",
	"PORT":                 "server.port",
}

type Config struct {
	Transport string          `koanf:"transport"`
	Timezone  string          `koanf:"timezone"`
	Telegram  TelegramConfig  `koanf:"telegram"`
	Slack     SlackConfig     `koanf:"slack"`
	Server    ServerConfig    `koanf:"server"`
	Store     StoreConfig     `koanf:"store"`
	Scheduler SchedulerConfig `koanf:"scheduler"`
}

type TelegramConfig struct {
	BotToken string `koanf:"bot_token"`
}

type SlackConfig struct {
	BotToken      string `koanf:"bot_token"`
	SigningSecret string `koanf:"signing_secret"`
}

type ServerConfig struct {
	Port int `koanf:"port"`
}

type StoreConfig struct {
	Driver    string `koanf:"driver"` // json or sqlite
	Path      string `koanf:"path"`
	OnCorrupt string `koanf:"on_corrupt"` // reset or fail
}

type SchedulerConfig struct {
	SendTimeout time.Duration `koanf:"send_timeout"`
}

// Load layers defaults, the optional YAML file at configPath, REMINDER_*
// variables and finally the legacy variables.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	for name, key := range legacyEnv {
		if v := os.Getenv(name); v != "" {
			k.Set(key, v)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Store.Path == "" {
		cfg.Store.Path = defaultStorePath(cfg.Store.Driver)
	}

	return &cfg, nil
}

// envKey maps REMINDER_STORE__ON_CORRUPT to store.on_corrupt.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func defaultStorePath(driver string) string {
	if driver == "sqlite" {
		return "reminders.db"
	}
	return "reminders.json"
}

func (c *Config) Validate() error {
	switch c.Transport {
	case TransportTelegram:
		if c.Telegram.BotToken == "" {
			return errors.New("telegram bot token is required (set TELEGRAM_BOT_TOKEN or telegram.bot_token)")
		}
	case TransportSlack:
		if c.Slack.BotToken == "" {
			return errors.New("slack bot token is required (set SLACK_BOT_TOKEN or slack.bot_token)")
		}
		if c.Slack.SigningSecret == "" {
			return errors.New("slack signing secret is required (set SLACK_SIGNING_SECRET or slack.signing_secret)")
		}
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			return fmt.Errorf("invalid server port: %d", c.Server.Port)
		}
	default:
		return fmt.Errorf("unknown transport: %s (supported: %s, %s)", c.Transport, TransportTelegram, TransportSlack)
	}

	switch c.Store.Driver {
	case "json", "sqlite":
	default:
		return fmt.Errorf("unknown store driver: %s (supported: json, sqlite)", c.Store.Driver)
	}

	switch c.Store.OnCorrupt {
	case "reset", "fail":
	default:
		return fmt.Errorf("unknown store.on_corrupt policy: %s (supported: reset, fail)", c.Store.OnCorrupt)
	}

	if c.Scheduler.SendTimeout <= 0 {
		return errors.New("scheduler.send_timeout must be positive")
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

// Location resolves Timezone, used for dates typed without an offset.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
