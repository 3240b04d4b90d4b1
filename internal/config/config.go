package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "WEATHER_WIDGET"

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	App       AppConfig
	OpenMeteo OpenMeteoConfig
	History   HistoryConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           int
	GinMode        string   // debug, release, test
	AllowedOrigins []string // CORS origins, empty disables CORS headers
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds widget behavior configuration
type AppConfig struct {
	DefaultLatitude     string
	DefaultLongitude    string
	ValidateCoordinates bool
	RequestTimeout      time.Duration
	ResolveTimezone     bool
}

// OpenMeteoConfig holds the forecast provider configuration
type OpenMeteoConfig struct {
	BaseURL string
}

// HistoryConfig holds search history storage configuration
type HistoryConfig struct {
	Path  string // SQLite file, empty keeps history in memory
	Limit int    // default number of records returned by the API
}

// Load reads configuration from .env, config file and environment variables
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	// A missing .env is fine, the process environment still applies
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.weather-widget")

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginMode", "release")
	v.SetDefault("server.allowedOrigins", []string{})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("app.defaultLatitude", "19.43")
	v.SetDefault("app.defaultLongitude", "-99.13")
	v.SetDefault("app.validateCoordinates", true)
	v.SetDefault("app.requestTimeout", 10*time.Second)
	v.SetDefault("app.resolveTimezone", true)
	v.SetDefault("openMeteo.baseURL", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("history.path", "")
	v.SetDefault("history.limit", 20)

	// Read from environment variables, e.g. WEATHER_WIDGET_SERVER_PORT
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.History.Limit <= 0 {
		cfg.History.Limit = 20
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
