package config

import (
	"errors"
	"log"

	"github.com/spf13/viper"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

type (
	Config struct {
		HTTP
		Global
		Database
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
		Environment              string
	}
	Database struct {
		Driver      string // "sqlite" or "postgres"
		Path        string // sqlite file
		DSN         string // postgres connection string
		LogLevel    string // silent, error, warn, info
		AutoMigrate bool
	}
)

// IsDevelopment reports whether development-only endpoints should be exposed.
func (c *Config) IsDevelopment() bool {
	return c.Global.Environment == EnvironmentDevelopment
}

func NewConfig() *Config {
	return newConfig(viper.New())
}

func newConfig(v *viper.Viper) *Config {
	v.AutomaticEnv()
	v.SetDefault("port", 8080)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 5)
	v.SetDefault("environment", EnvironmentDevelopment)
	v.SetDefault("database_driver", DriverSQLite)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_dsn", "")
	v.SetDefault("database_log_level", "warn")
	v.SetDefault("database_auto_migrate", true)

	// Optional config file overlays the defaults; env vars still win.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path := v.GetString("CONFIG_PATH"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("WARNING: could not read config file: %v", err)
		}
	}

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
			Environment:              v.GetString("ENVIRONMENT"),
		},
		Database: Database{
			Driver:      v.GetString("DATABASE_DRIVER"),
			Path:        v.GetString("DATABASE_PATH"),
			DSN:         v.GetString("DATABASE_DSN"),
			LogLevel:    v.GetString("DATABASE_LOG_LEVEL"),
			AutoMigrate: v.GetBool("DATABASE_AUTO_MIGRATE"),
		},
	}
}
