package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"anonbot/internal/logger"
	"anonbot/internal/storage"
)

// TelegramConfig holds bot credential and update delivery settings.
type TelegramConfig struct {
	Token   string `yaml:"token" envconfig:"BOT_TOKEN"`
	RunMode string `yaml:"run_mode" envconfig:"TELEGRAM_RUN_MODE"`
	// LongPollTimeoutSeconds defines long polling timeout; 0 -> default
	LongPollTimeoutSeconds int `yaml:"longpoll_timeout_seconds" envconfig:"TELEGRAM_LONGPOLL_TIMEOUT_SECONDS"`
}

// WebhookConfig specifies webhook settings.
type WebhookConfig struct {
	URL    string `yaml:"url" envconfig:"WEBHOOK_URL"`
	Listen string `yaml:"listen" envconfig:"WEBHOOK_LISTEN"`
	Port   int    `yaml:"port" envconfig:"WEBHOOK_PORT"`
}

// ChannelsConfig identifies the channels and chats the bot works with.
type ChannelsConfig struct {
	// ChannelID is the public channel approved posts are published to.
	ChannelID int64 `yaml:"channel_id" envconfig:"CHANNEL_ID"`
	// ModeratorGroupID receives pending posts with approve/reject controls.
	ModeratorGroupID int64 `yaml:"moderator_group_id" envconfig:"MODERATOR_GROUP_ID"`
	// RequiredJoinChannel gates all content actions on membership.
	RequiredJoinChannel int64 `yaml:"required_join_channel" envconfig:"REQUIRED_JOIN_CHANNEL"`
	// AdminIDs lists user ids allowed to moderate, comma-separated in env.
	AdminIDs []int64 `yaml:"admin_ids" envconfig:"ADMINS_ID"`
}

// RateLimitConfig holds settings for per-user rate limiting.
type RateLimitConfig struct {
	IntervalMS int `yaml:"interval_ms" envconfig:"RATE_LIMIT_INTERVAL_MS"`
}

// SessionConfig bounds dialogue session lifetime.
type SessionConfig struct {
	TTLMinutes           int `yaml:"ttl_minutes" envconfig:"SESSION_TTL_MINUTES"`
	SweepIntervalMinutes int `yaml:"sweep_interval_minutes" envconfig:"SESSION_SWEEP_INTERVAL_MINUTES"`
}

// MaintenanceConfig drives the scheduled storage maintenance jobs.
type MaintenanceConfig struct {
	PurgeRejectedAfterDays int    `yaml:"purge_rejected_after_days" envconfig:"PURGE_REJECTED_AFTER_DAYS"`
	PurgeSchedule          string `yaml:"purge_schedule" envconfig:"PURGE_SCHEDULE"`
	BackupDir              string `yaml:"backup_dir" envconfig:"BACKUP_DIR"`
	BackupSchedule         string `yaml:"backup_schedule" envconfig:"BACKUP_SCHEDULE"`
}

const (
	// RunModeWebhook selects webhook mode for Telegram updates.
	RunModeWebhook = "webhook"
	// RunModeLongpoll selects long-polling mode for Telegram updates.
	RunModeLongpoll = "longpoll"
)

// Config aggregates the full application configuration.
type Config struct {
	Telegram    TelegramConfig    `yaml:"telegram"`
	Webhook     WebhookConfig     `yaml:"webhook"`
	Channels    ChannelsConfig    `yaml:"channels"`
	Database    storage.Config    `yaml:"database"`
	Logging     logger.Config     `yaml:"logging"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Session     SessionConfig     `yaml:"session"`
	Maintenance MaintenanceConfig `yaml:"maintenance"`
}

// Load reads configuration from an optional .env file, a YAML file, and
// environment variables. Environment values override the YAML file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := Normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize validates required configuration fields and adjusts defaults.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}

	if strings.TrimSpace(cfg.Telegram.Token) == "" {
		return fmt.Errorf("telegram token is required")
	}
	if cfg.Channels.ChannelID == 0 {
		return fmt.Errorf("channels.channel_id is required")
	}
	if cfg.Channels.ModeratorGroupID == 0 {
		return fmt.Errorf("channels.moderator_group_id is required")
	}
	if cfg.Channels.RequiredJoinChannel == 0 {
		return fmt.Errorf("channels.required_join_channel is required")
	}
	if len(cfg.Channels.AdminIDs) == 0 {
		return fmt.Errorf("channels.admin_ids must list at least one administrator")
	}

	rm := strings.ToLower(strings.TrimSpace(cfg.Telegram.RunMode))
	if rm == "" || rm == "polling" {
		rm = RunModeLongpoll
	}
	switch rm {
	case RunModeWebhook:
		if strings.TrimSpace(cfg.Webhook.URL) == "" {
			return fmt.Errorf("webhook.url is required when telegram.run_mode is 'webhook'")
		}
		if strings.TrimSpace(cfg.Webhook.Listen) == "" {
			return fmt.Errorf("webhook.listen is required when telegram.run_mode is 'webhook'")
		}
		if cfg.Webhook.Port <= 0 {
			return fmt.Errorf("webhook.port must be > 0 when telegram.run_mode is 'webhook'")
		}
	case RunModeLongpoll:
		if cfg.Telegram.LongPollTimeoutSeconds < 0 {
			return fmt.Errorf("telegram.longpoll_timeout_seconds must be >= 0")
		}
	default:
		return fmt.Errorf("invalid telegram.run_mode %q; allowed: webhook, longpoll", cfg.Telegram.RunMode)
	}
	cfg.Telegram.RunMode = rm

	if strings.TrimSpace(cfg.Database.Path) == "" {
		cfg.Database.Path = "anonymous_bot.db"
	}
	if cfg.Session.TTLMinutes <= 0 {
		cfg.Session.TTLMinutes = 30
	}
	if cfg.Session.SweepIntervalMinutes <= 0 {
		cfg.Session.SweepIntervalMinutes = 5
	}
	if cfg.Maintenance.PurgeRejectedAfterDays <= 0 {
		cfg.Maintenance.PurgeRejectedAfterDays = 30
	}
	if strings.TrimSpace(cfg.Maintenance.PurgeSchedule) == "" {
		cfg.Maintenance.PurgeSchedule = "@daily"
	}
	if strings.TrimSpace(cfg.Maintenance.BackupDir) == "" {
		cfg.Maintenance.BackupDir = "backups"
	}
	if strings.TrimSpace(cfg.Maintenance.BackupSchedule) == "" {
		cfg.Maintenance.BackupSchedule = "@daily"
	}

	return nil
}

// IsAdmin reports whether the given user id is in the configured administrator set.
func (c ChannelsConfig) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
