package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Admin     AdminConfig     `yaml:"admin"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	DoorLoop  DoorLoopConfig  `yaml:"doorloop"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
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
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AdminConfig gates the approve/authorize/execute forwarding endpoints.
// Token is compared against the x-admin-token header; BearerToken, when
// set, is additionally required as an Authorization bearer token.
type AdminConfig struct {
	Token       string `yaml:"token"        env:"ADMIN_TOKEN"        env-required:"true"`
	BearerToken string `yaml:"bearer_token" env:"ADMIN_BEARER_TOKEN"`
}

// RateLimitConfig holds per-IP rate limiting settings for admin endpoints.
type RateLimitConfig struct {
	AdminPerMinute  int           `yaml:"admin_per_minute" env:"RATE_LIMIT_ADMIN_PER_MINUTE" env-default:"10"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// SchedulerConfig controls the in-process due-transfer ticker.
type SchedulerConfig struct {
	Enabled   bool          `yaml:"enabled"    env:"SCHEDULER_ENABLED"    env-default:"true"`
	Interval  time.Duration `yaml:"interval"   env:"SCHEDULER_INTERVAL"   env-default:"5m"`
	BatchSize int           `yaml:"batch_size" env:"SCHEDULER_BATCH_SIZE" env-default:"20"`
}

// DoorLoopConfig holds upstream DoorLoop API settings for the owners sync.
type DoorLoopConfig struct {
	APIKey         string        `yaml:"api_key"         env:"DOORLOOP_API_KEY"`
	BaseURL        string        `yaml:"base_url"        env:"DOORLOOP_BASE_URL"        env-default:"https://app.doorloop.com/api"`
	OwnersEndpoint string        `yaml:"owners_endpoint" env:"OWNERS_ENDPOINT"          env-default:"owners"`
	SinceDays      int           `yaml:"since_days"      env:"SINCE_DAYS"               env-default:"30"`
	PageSize       int           `yaml:"page_size"       env:"DOORLOOP_PAGE_SIZE"       env-default:"200"`
	PageDelay      time.Duration `yaml:"page_delay"      env:"DOORLOOP_PAGE_DELAY"      env-default:"250ms"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"DOORLOOP_REQUEST_TIMEOUT" env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings. AllowedOrigins doubles as the
// origin/referer allow-list for the admin forwarding endpoints.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Admin-Token"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
