package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Storage   StorageConfig
	Tracing   TracingConfig `mapstructure:"tracing"`
	Redis     RedisConfig
	Quiz      QuizConfig      `mapstructure:"quiz"`
	Parent    ParentConfig    `mapstructure:"parent"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	OSSEndpoint   string `mapstructure:"oss_endpoint"`
	OSSAccessKey  string `mapstructure:"oss_access_key"`
	OSSSecretKey  string `mapstructure:"oss_secret_key"`
	OSSBucket     string `mapstructure:"oss_bucket"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// QuizConfig tunes gameplay behaviour. Durations are milliseconds.
type QuizConfig struct {
	FeedbackCorrectMs   int `mapstructure:"feedback_correct_ms"`
	FeedbackIncorrectMs int `mapstructure:"feedback_incorrect_ms"`
	DefaultCount        int `mapstructure:"default_count"`
	SessionIdleMinutes  int `mapstructure:"session_idle_minutes"`
}

// ParentConfig carries the parent-screen passcode. The passcode is never
// compared inline in handlers; it is injected into the auth service.
// PasscodeHash (bcrypt) takes precedence over the plain Passcode when set.
type ParentConfig struct {
	Passcode        string `mapstructure:"passcode"`
	PasscodeHash    string `mapstructure:"passcode_hash"`
	MaxAttempts     int    `mapstructure:"max_attempts"`
	LockoutMinutes  int    `mapstructure:"lockout_minutes"`
	AttemptThrottle bool   `mapstructure:"attempt_throttle"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("KANJI_QUIZ")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// JWT
	viper.BindEnv("jwt.secret", "JWT_SECRET")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Parent passcode
	viper.BindEnv("parent.passcode", "PARENT_PASSCODE")
	viper.BindEnv("parent.passcode_hash", "PARENT_PASSCODE_HASH")

	// Storage
	viper.BindEnv("storage.type", "STORAGE_TYPE")
	viper.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("storage.minio_bucket", "MINIO_BUCKET")
	viper.BindEnv("storage.oss_endpoint", "OSS_ENDPOINT")
	viper.BindEnv("storage.oss_access_key", "OSS_ACCESS_KEY")
	viper.BindEnv("storage.oss_secret_key", "OSS_SECRET_KEY")
	viper.BindEnv("storage.oss_bucket", "OSS_BUCKET")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour

	if cfg.Server.Mode == "release" && len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.Secret))
	}

	if cfg.Server.Mode == "release" && cfg.Parent.Passcode == "" && cfg.Parent.PasscodeHash == "" {
		return nil, fmt.Errorf("parent passcode is not configured")
	}

	if cfg.Quiz.FeedbackCorrectMs <= 0 {
		cfg.Quiz.FeedbackCorrectMs = 2000
	}
	if cfg.Quiz.FeedbackIncorrectMs <= 0 {
		cfg.Quiz.FeedbackIncorrectMs = 2000
	}
	if cfg.Quiz.DefaultCount < 0 {
		cfg.Quiz.DefaultCount = 0
	}
	if cfg.Quiz.SessionIdleMinutes <= 0 {
		cfg.Quiz.SessionIdleMinutes = 30
	}

	if cfg.Storage.Type == "local" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	return &cfg, nil
}
