package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration, read via Viper from env vars
// and optionally from a .env file. Env vars always win.
type Config struct {
	App   AppConfig
	DB    DBConfig
	HTTP  HTTPConfig
	JWT   JWTConfig
	Redis RedisConfig
	SMTP  SMTPConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// DBConfig PostgreSQL settings. If DatabaseURL is set it is used as the full
// connection string; otherwise the DSN is built from the individual fields.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString returns DatabaseURL when set, otherwise the built DSN.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN builds the PostgreSQL connection string, URL-encoding credentials.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig token issuance settings. The refresh window depends on the
// rememberMe flag of the login request.
type JWTConfig struct {
	Secret              string
	Issuer              string
	AccessMinutes       int // access token lifetime
	RefreshHours        int // refresh token lifetime without rememberMe
	RefreshRememberDays int // refresh token lifetime with rememberMe
}

// RedisConfig settings for the reset-token store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// ResetTokenTTLMinutes lifetime of a password-reset token.
	ResetTokenTTLMinutes int
}

// SMTPConfig outbound mail settings (password-reset emails).
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Load reads configuration from env vars and an optional .env file.
// Expected names: APP_ENV, DB_HOST, JWT_SECRET, REDIS_ADDR, SMTP_HOST, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // file is optional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "warehouse-backoffice"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "warehouse_backoffice"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:              getString(v, "JWT_SECRET", ""),
			Issuer:              getString(v, "JWT_ISSUER", "warehouse-backoffice"),
			AccessMinutes:       getInt(v, "JWT_ACCESS_MINUTES", 60),
			RefreshHours:        getInt(v, "JWT_REFRESH_HOURS", 12),
			RefreshRememberDays: getInt(v, "JWT_REFRESH_REMEMBER_DAYS", 30),
		},
		Redis: RedisConfig{
			Addr:                 getString(v, "REDIS_ADDR", "localhost:6379"),
			Password:             getString(v, "REDIS_PASSWORD", ""),
			DB:                   getInt(v, "REDIS_DB", 0),
			ResetTokenTTLMinutes: getInt(v, "RESET_TOKEN_TTL_MINUTES", 30),
		},
		SMTP: SMTPConfig{
			Host:     getString(v, "SMTP_HOST", "localhost"),
			Port:     getInt(v, "SMTP_PORT", 587),
			Username: getString(v, "SMTP_USERNAME", ""),
			Password: getString(v, "SMTP_PASSWORD", ""),
			From:     getString(v, "SMTP_FROM", "no-reply@warehouse-backoffice.vn"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return def
}
