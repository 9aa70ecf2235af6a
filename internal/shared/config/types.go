package config

import (
	"fmt"
	"strings"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig selects the storage engine. Driver is one of sqlite, mysql or postgres.
// DSN, when set, is used verbatim; otherwise it is assembled from the discrete fields.
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	DSN             string `mapstructure:"dsn"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	dsn := d.DSN
	if dsn == "" {
		switch d.Driver {
		case "mysql":
			return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				d.Username, d.Password, d.Host, d.Port, d.Database)
		case "postgres":
			return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
				d.Host, d.Port, d.Username, d.Password, d.Database)
		default:
			dsn = d.Database
		}
	}
	if d.Driver == "" || d.Driver == "sqlite" {
		return withSQLiteForeignKeys(dsn)
	}
	return dsn
}

// withSQLiteForeignKeys turns on foreign key enforcement for every connection
// the driver opens, unless the DSN already decides it.
func withSQLiteForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type CookieConfig struct {
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

// AuthConfig carries the single shared admin secret and the key that signs admin sessions.
// AdminPasswordHash, when set, takes precedence over AdminPassword.
type AuthConfig struct {
	AdminPassword     string       `mapstructure:"admin_password"`
	AdminPasswordHash string       `mapstructure:"admin_password_hash"`
	SecretKey         string       `mapstructure:"secret_key"`
	SessionHours      int          `mapstructure:"session_hours"`
	BcryptCost        int          `mapstructure:"bcrypt_cost"`
	Cookie            CookieConfig `mapstructure:"cookie"`
}

func (a *AuthConfig) SessionTTL() time.Duration {
	return time.Duration(a.SessionHours) * time.Hour
}

// AttendeeConfig controls the long-lived browser session cookie used for claim ownership.
type AttendeeConfig struct {
	CookieName    string `mapstructure:"cookie_name"`
	CookieMaxDays int    `mapstructure:"cookie_max_days"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type RateLimitConfig struct {
	LoginPerMinute int `mapstructure:"login_per_minute"`
}
