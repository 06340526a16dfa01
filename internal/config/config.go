package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime settings for the register service.
type Config struct {
	AppPort         string
	DBDriver        string
	DatabaseDSN     string
	JWTSecret       string
	AuthRequired    bool
	AdminUsername   string
	AdminPassword   string
	RabbitMQURL     string
	OrderListLimit  int
	ShutdownTimeout time.Duration
}

// Load reads configuration from defaults, an optional config file and the
// environment, in increasing order of precedence. The config file is taken
// from KASIR_CONFIG, or config.yaml in the working directory.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path := v.GetString("KASIR_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	cfg := &Config{
		AppPort:         v.GetString("APP_PORT"),
		DBDriver:        v.GetString("DB_DRIVER"),
		DatabaseDSN:     v.GetString("DATABASE_DSN"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		AuthRequired:    v.GetBool("AUTH_REQUIRED"),
		AdminUsername:   v.GetString("ADMIN_USERNAME"),
		AdminPassword:   v.GetString("ADMIN_PASSWORD"),
		RabbitMQURL:     v.GetString("RABBITMQ_URL"),
		OrderListLimit:  v.GetInt("ORDER_LIST_LIMIT"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", c.DBDriver)
	}
	if c.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN is required")
	}
	if c.AuthRequired && c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required when AUTH_REQUIRED is enabled")
	}
	if c.OrderListLimit <= 0 {
		return fmt.Errorf("ORDER_LIST_LIMIT must be positive, got %d", c.OrderListLimit)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=kasir port=5432 sslmode=disable")
	v.SetDefault("AUTH_REQUIRED", true)
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ORDER_LIST_LIMIT", 50)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
}
