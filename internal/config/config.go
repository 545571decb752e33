package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	App      AppConfig
	MinIO    MinIOConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
}

// AppConfig holds the settings of the booking site itself.
type AppConfig struct {
	Name              string
	UTCOffsetHours    int
	CSRFEnabled       bool
	SessionExpiration time.Duration
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	UseSSL          bool
	PublicURL       string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         env("SERVER_PORT", "5000", str),
			ReadTimeout:  env("SERVER_READ_TIMEOUT", 30*time.Second, time.ParseDuration),
			WriteTimeout: env("SERVER_WRITE_TIMEOUT", 30*time.Second, time.ParseDuration),
		},
		Database: DatabaseConfig{
			Host:            env("DB_HOST", "localhost", str),
			Port:            env("DB_PORT", "5432", str),
			User:            env("DB_USER", "postgres", str),
			Password:        env("DB_PASSWORD", "postgres", str),
			DBName:          env("DB_NAME", "fyyur", str),
			SSLMode:         env("DB_SSLMODE", "disable", str),
			MaxOpenConns:    env("DB_MAX_OPEN_CONNS", 25, strconv.Atoi),
			MaxIdleConns:    env("DB_MAX_IDLE_CONNS", 5, strconv.Atoi),
			ConnMaxLifetime: env("DB_CONN_MAX_LIFETIME", 5*time.Minute, time.ParseDuration),
			QueryTimeout:    env("DB_QUERY_TIMEOUT", 10*time.Second, time.ParseDuration),
		},
		App: AppConfig{
			Name:              env("APP_NAME", "Fyyur", str),
			UTCOffsetHours:    env("BOOKING_UTC_OFFSET_HOURS", -3, strconv.Atoi),
			CSRFEnabled:       env("CSRF_ENABLED", true, strconv.ParseBool),
			SessionExpiration: env("SESSION_EXPIRATION", 24*time.Hour, time.ParseDuration),
		},
		MinIO: MinIOConfig{
			Endpoint:        env("AWS_ENDPOINT", "localhost:9000", str),
			AccessKeyID:     env("AWS_ACCESS_KEY_ID", "", str),
			SecretAccessKey: env("AWS_SECRET_ACCESS_KEY", "", str),
			BucketName:      env("AWS_BUCKET", "fyyur-images", str),
			Region:          env("AWS_DEFAULT_REGION", "us-east-1", str),
			UseSSL:          env("AWS_USE_SSL", false, strconv.ParseBool),
			PublicURL:       env("AWS_URL", "http://localhost:9000/fyyur-images", str),
		},
	}
}

// GetDSN returns the lib/pq style connection string. Timestamps travel in UTC.
func (c *Config) GetDSN() string {
	d := c.Database
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// MinIOEnabled reports whether image uploads can be served.
func (c *Config) MinIOEnabled() bool {
	return c.MinIO.Endpoint != "" && c.MinIO.AccessKeyID != "" && c.MinIO.SecretAccessKey != ""
}

// BookingZone is the fixed zone used to classify shows as past or upcoming.
func (c *Config) BookingZone() *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", c.App.UTCOffsetHours), c.App.UTCOffsetHours*3600)
}

// Validate reports every problem found. Missing upload credentials only
// disable image uploads, so callers may treat the result as a warning.
func (c *Config) Validate() error {
	var errs []error
	if c.Database.Host == "" {
		errs = append(errs, errors.New("DB_HOST is required"))
	}
	if c.App.UTCOffsetHours < -12 || c.App.UTCOffsetHours > 14 {
		errs = append(errs, fmt.Errorf("BOOKING_UTC_OFFSET_HOURS out of range: %d", c.App.UTCOffsetHours))
	}
	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		errs = append(errs, fmt.Errorf("DB_MAX_IDLE_CONNS (%d) exceeds DB_MAX_OPEN_CONNS (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns))
	}
	if !c.MinIOEnabled() {
		errs = append(errs, errors.New("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY are required for image uploads"))
	}
	return errors.Join(errs...)
}

func str(s string) (string, error) { return s, nil }

// env parses key with parse, falling back to def when the variable is unset,
// empty or malformed.
func env[T any](key string, def T, parse func(string) (T, error)) T {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		return def
	}
	return v
}
