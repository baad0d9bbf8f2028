// Package config builds the skill configuration from the environment.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sukalov/lyricecho/internal/utils"
)

// Config holds everything the process reads at start.
type Config struct {
	Addr string

	Genius   GeniusConfig
	Redis    RedisConfig
	History  HistoryConfig
	Logging  LoggingConfig
	LogBot   LogBotConfig
	Sessions SessionConfig
}

// GeniusConfig holds the search gateway credentials.
type GeniusConfig struct {
	Token   string
	BaseURL string
	Timeout time.Duration
}

// RedisConfig enables the Redis session store when URL is set.
type RedisConfig struct {
	URL      string
	Password string
}

type HistoryConfig struct {
	DatabaseURL string
	AuthToken   string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// LogBotConfig enables mirroring of error logs into a Telegram channel.
type LogBotConfig struct {
	Token     string
	ChannelID int64
}

type SessionConfig struct {
	TTL time.Duration
}

const (
	DefaultAddr          = ":8080"
	DefaultGeniusBaseURL = "https://api.genius.com"
	DefaultHTTPTimeout   = 10 * time.Second
	DefaultSessionTTL    = time.Hour
)

// Load reads the environment (and a .env file when present) into a Config.
// GENIUS_API_TOKEN is required.
func Load() (*Config, error) {
	env, err := utils.LoadEnv([]string{"GENIUS_API_TOKEN"})
	if err != nil {
		return nil, err
	}

	timeout, err := utils.GetEnvDuration("HTTP_TIMEOUT", DefaultHTTPTimeout)
	if err != nil {
		return nil, err
	}
	ttl, err := utils.GetEnvDuration("SESSION_TTL", DefaultSessionTTL)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Addr: utils.GetEnv("LYRICECHO_ADDR", DefaultAddr),
		Genius: GeniusConfig{
			Token:   env["GENIUS_API_TOKEN"],
			BaseURL: strings.TrimSuffix(utils.GetEnv("GENIUS_API_URL", DefaultGeniusBaseURL), "/"),
			Timeout: timeout,
		},
		Redis: RedisConfig{
			URL:      utils.GetEnv("REDIS_URL", ""),
			Password: utils.GetEnv("REDIS_PASSWORD", ""),
		},
		History: HistoryConfig{
			DatabaseURL: utils.GetEnv("TURSO_DATABASE_URL", ""),
			AuthToken:   utils.GetEnv("TURSO_AUTH_TOKEN", ""),
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(utils.GetEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(utils.GetEnv("LOG_FORMAT", "text")),
		},
		LogBot: LogBotConfig{
			Token: utils.GetEnv("LOG_BOT_TOKEN", ""),
		},
		Sessions: SessionConfig{TTL: ttl},
	}

	if raw := utils.GetEnv("LOG_CHANNEL_ID", ""); raw != "" {
		cfg.LogBot.ChannelID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse LOG_CHANNEL_ID: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be caught by parsing alone.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q", c.Logging.Format)
	}
	if c.Genius.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Sessions.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if (c.LogBot.Token == "") != (c.LogBot.ChannelID == 0) {
		return fmt.Errorf("LOG_BOT_TOKEN and LOG_CHANNEL_ID must be set together")
	}
	return nil
}

// RedisEnabled reports whether sessions should live in Redis.
func (c *Config) RedisEnabled() bool { return c.Redis.URL != "" }

// HistoryEnabled reports whether lookups should be recorded.
func (c *Config) HistoryEnabled() bool { return c.History.DatabaseURL != "" }
