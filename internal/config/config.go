package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultAvatarURL = "https://static.filmbox.app/avatars/default.png"

// Config application settings
type Config struct {
	Env             string
	Port            string
	LogLevel        string
	DatabaseURL     string
	DefaultAvatar   string
	ShutdownTimeout int // seconds
}

// Production reports whether the service runs with APP_ENV=production
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads .env (if present), configs/config.yml (if present) and the environment.
// Environment variables win over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath("configs")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "filmbox")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DEFAULT_AVATAR_URL", defaultAvatarURL)
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
}

func fromViper(v *viper.Viper) (*Config, error) {
	dbURL := v.GetString("DATABASE_URL")
	if dbURL == "" {
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(v.GetString("DB_USER"), v.GetString("DB_PASSWORD")),
			Host:     v.GetString("DB_HOST") + ":" + v.GetString("DB_PORT"),
			Path:     "/" + v.GetString("DB_NAME"),
			RawQuery: "sslmode=" + url.QueryEscape(v.GetString("DB_SSLMODE")),
		}
		dbURL = u.String()
	}

	cfg := &Config{
		Env:             strings.ToLower(v.GetString("APP_ENV")),
		Port:            v.GetString("PORT"),
		LogLevel:        strings.ToLower(v.GetString("LOG_LEVEL")),
		DatabaseURL:     dbURL,
		DefaultAvatar:   v.GetString("DEFAULT_AVATAR_URL"),
		ShutdownTimeout: v.GetInt("SHUTDOWN_TIMEOUT_SECONDS"),
	}
	if cfg.Port == "" {
		return nil, errors.New("PORT must not be empty")
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be positive, got %d", cfg.ShutdownTimeout)
	}
	return cfg, nil
}
