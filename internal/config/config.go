package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Store    StoreConfig    `mapstructure:"store"`
	Redis    RedisConfig    `mapstructure:"redis"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	Log      LogConfig      `mapstructure:"log"`
	Security SecurityConfig `mapstructure:"security"`
}

type ServerConfig struct {
	Port           int     `mapstructure:"port"`
	MaxBodyBytes   int64   `mapstructure:"max_body_bytes"`
	MaxUploadBytes int64   `mapstructure:"max_upload_bytes"`
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
}

type StoreConfig struct {
	// Driver selects the record store backend: postgres or memory.
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	URL      string `mapstructure:"url"`
	PoolSize int    `mapstructure:"pool_size"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	// NotifyTo receives booking confirmations (the concierge desk inbox).
	NotifyTo string `mapstructure:"notify_to"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type SecurityConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// envOverrides are the environment knobs that win over the config file.
// PORT alone is required knowledge for deployment; the rest are optional.
type envOverrides struct {
	Port          int    `envconfig:"PORT"`
	StoreDriver   string `envconfig:"STORE_DRIVER"`
	StoreHost     string `envconfig:"STORE_HOST"`
	StorePassword string `envconfig:"STORE_PASSWORD"`
	RedisURL      string `envconfig:"REDIS_URL"`
	LogLevel      string `envconfig:"LOG_LEVEL"`
}

// Load reads config.yaml if present, applies defaults otherwise, then lets
// environment variables override.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	applyEnv(&cfg, env)

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.max_body_bytes", 1<<20)
	viper.SetDefault("server.max_upload_bytes", 10<<20)
	viper.SetDefault("server.rate_limit_rps", 50.0)
	viper.SetDefault("server.rate_limit_burst", 100)
	viper.SetDefault("store.driver", "postgres")
	viper.SetDefault("store.host", "localhost")
	viper.SetDefault("store.port", 5432)
	viper.SetDefault("store.user", "postgres")
	viper.SetDefault("store.name", "medibridge")
	viper.SetDefault("store.sslmode", "disable")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("security.allowed_origins", []string{"*"})
}

func applyEnv(cfg *Config, env envOverrides) {
	if env.Port != 0 {
		cfg.Server.Port = env.Port
	}
	if env.StoreDriver != "" {
		cfg.Store.Driver = env.StoreDriver
	}
	if env.StoreHost != "" {
		cfg.Store.Host = env.StoreHost
	}
	if env.StorePassword != "" {
		cfg.Store.Password = env.StorePassword
	}
	if env.RedisURL != "" {
		cfg.Redis.URL = env.RedisURL
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
}
