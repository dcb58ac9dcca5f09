package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Photos   PhotosConfig   `yaml:"photos"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Timezone"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds bearer token settings. Tokens are HS256 JWTs whose
// subject is the owning user's UUID.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"plantcare"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"720h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ScheduleConfig controls how next-care dates are classified and which
// intervals a plant starts with.
type ScheduleConfig struct {
	// Timezone defines the calendar day used for status and range bounds
	// when the request does not carry its own.
	Timezone                       string `yaml:"timezone"                         env:"SCHEDULE_TIMEZONE"                         env-default:"UTC"`
	DefaultWateringIntervalDays    int    `yaml:"default_watering_interval_days"    env:"SCHEDULE_DEFAULT_WATERING_INTERVAL_DAYS"    env-default:"7"`
	DefaultFertilizingIntervalDays int    `yaml:"default_fertilizing_interval_days" env:"SCHEDULE_DEFAULT_FERTILIZING_INTERVAL_DAYS" env-default:"30"`
	MaxRangeDays                   int    `yaml:"max_range_days"                   env:"SCHEDULE_MAX_RANGE_DAYS"                   env-default:"370"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// PhotosConfig holds photo blob storage settings.
type PhotosConfig struct {
	Dir       string `yaml:"dir"        env:"PHOTOS_DIR"        env-default:"./data/photos"`
	PublicURL string `yaml:"public_url" env:"PHOTOS_PUBLIC_URL" env-default:"/photos"`
	MaxBytes  int64  `yaml:"max_bytes"  env:"PHOTOS_MAX_BYTES"  env-default:"10485760"`
	// UploadsPerMinute limits photo uploads per client IP; 0 disables the limit.
	UploadsPerMinute int `yaml:"uploads_per_minute" env:"PHOTOS_UPLOADS_PER_MINUTE" env-default:"30"`
}
