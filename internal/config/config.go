package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxConns int    `mapstructure:"max_conns"`
	MinConns int    `mapstructure:"min_conns"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer            string        `mapstructure:"issuer"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// Load reads configuration from environment variables with the SANHAJA_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SANHAJA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "sanhaja")
	v.SetDefault("db.password", "sanhaja_secret")
	v.SetDefault("db.name", "sanhaja_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_conns", 25)
	v.SetDefault("db.min_conns", 2)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "24h")
	v.SetDefault("jwt.issuer", "sanhaja")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.development", true)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "SANHAJA_SERVER_PORT",
		"server.read_timeout":  "SANHAJA_SERVER_READ_TIMEOUT",
		"server.write_timeout": "SANHAJA_SERVER_WRITE_TIMEOUT",
		"server.environment":   "SANHAJA_SERVER_ENVIRONMENT",
		"db.host":              "SANHAJA_DB_HOST",
		"db.port":              "SANHAJA_DB_PORT",
		"db.user":              "SANHAJA_DB_USER",
		"db.password":          "SANHAJA_DB_PASSWORD",
		"db.name":              "SANHAJA_DB_NAME",
		"db.sslmode":           "SANHAJA_DB_SSLMODE",
		"db.max_conns":         "SANHAJA_DB_MAX_CONNS",
		"db.min_conns":         "SANHAJA_DB_MIN_CONNS",
		"jwt.secret":           "SANHAJA_JWT_SECRET",
		"jwt.access_expiry":    "SANHAJA_JWT_ACCESS_EXPIRY",
		"jwt.issuer":           "SANHAJA_JWT_ISSUER",
		"log.level":            "SANHAJA_LOG_LEVEL",
		"log.development":      "SANHAJA_LOG_DEVELOPMENT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if SANHAJA_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("SANHAJA_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxConns: v.GetInt("db.max_conns"),
		MinConns: v.GetInt("db.min_conns"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:            v.GetString("jwt.issuer"),
	}
	cfg.Log = LogConfig{
		Level:       v.GetString("log.level"),
		Development: v.GetBool("log.development"),
	}

	return cfg, nil
}
