package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"quidque.com/discord-votebot/internal/logger"
)

const DefaultPath = "config.json"

type Config struct {
	Token     string `json:"discord_token" env:"VOTEBOT_DISCORD_TOKEN"`
	BotName   string `json:"bot_name" env:"VOTEBOT_NAME" env-default:"votebot"`
	ChannelID string `json:"channel_id" env:"VOTEBOT_CHANNEL_ID"`

	PollIDMaxLen    int `json:"poll_id_max_len" env:"VOTEBOT_POLL_ID_MAX_LEN" env-default:"10"`
	ShutdownTimeout int `json:"shutdown_timeout_seconds" env:"VOTEBOT_SHUTDOWN_TIMEOUT" env-default:"30"`

	LogLevel string `json:"log_level" env:"VOTEBOT_LOG_LEVEL" env-default:"info"`
}

// Load reads the JSON file at configPath and applies environment overrides.
func Load(configPath string) (Config, error) {
	var config Config

	if configPath == "" {
		configPath = DefaultPath
	}

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return Config{}, err
	}

	if err := cleanenv.ReadConfig(absPath, &config); err != nil {
		return Config{}, fmt.Errorf("cannot read config %s: %w", absPath, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// LoadOrEnv loads configPath when it exists and otherwise builds the config
// from environment variables alone. The second result reports which happened.
func LoadOrEnv(configPath string) (Config, bool, error) {
	if configPath == "" {
		configPath = DefaultPath
	}

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		cfg, err := LoadFromEnv()
		return cfg, false, err
	}

	cfg, err := Load(configPath)
	return cfg, true, err
}

// LoadFromEnv builds a config from environment variables alone.
func LoadFromEnv() (Config, error) {
	var config Config

	if err := cleanenv.ReadEnv(&config); err != nil {
		return Config{}, fmt.Errorf("cannot read config from environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) Validate() error {
	if c.Token == "" {
		return errors.New("discord_token is required in config")
	}

	if c.PollIDMaxLen <= 0 {
		return fmt.Errorf("poll_id_max_len must be positive, got %d", c.PollIDMaxLen)
	}

	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("shutdown_timeout_seconds must not be negative, got %d", c.ShutdownTimeout)
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	return nil
}

func (c Config) Level() logger.Level {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return logger.LevelInfo
	}
	return level
}

func (c Config) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(c.ShutdownTimeout) * time.Second
}
