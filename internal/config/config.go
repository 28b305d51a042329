// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config 為服務的所有設定，全部來自環境變數
type Config struct {
	HTTP    HTTPConfig
	DB      DBConfig
	Redis   RedisConfig
	Auth    AuthConfig
	Catalog CatalogConfig
	Log     LogConfig
	Worker  WorkerConfig
}

type HTTPConfig struct {
	Addr  string `env:"HTTP_ADDR" env-default:":8080"`
	Debug bool   `env:"HTTP_DEBUG" env-default:"false"`
}

type DBConfig struct {
	URL string `env:"DATABASE_URL" env-required:"true"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" env-required:"true"`
	Password string `env:"REDIS_PASSWORD" env-default:""`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

type AuthConfig struct {
	JWTSecret           string        `env:"JWT_SECRET" env-required:"true"`
	SessionTTL          time.Duration `env:"SESSION_TTL" env-default:"24h"`
	CookieSecure        bool          `env:"COOKIE_SECURE" env-default:"false"`
	PasswordHasher      string        `env:"PASSWORD_HASHER" env-default:"argon2id"`
	AdminRequireSession bool          `env:"ADMIN_REQUIRE_SESSION" env-default:"false"`
}

type CatalogConfig struct {
	CacheTTL time.Duration `env:"PRODUCT_CACHE_TTL" env-default:"60s"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"`
}

type WorkerConfig struct {
	Count int `env:"WORKER_COUNT" env-default:"1"`
}

// Load 讀取環境變數並檢查數值
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	// cleanenv 只檢查變數是否存在，空字串要另外擋
	if cfg.DB.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.Redis.Addr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is empty")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}
	if cfg.Worker.Count <= 0 {
		return nil, fmt.Errorf("WORKER_COUNT must be positive, got %d", cfg.Worker.Count)
	}
	if cfg.Auth.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.Auth.SessionTTL)
	}
	if cfg.Catalog.CacheTTL < 0 {
		return nil, fmt.Errorf("PRODUCT_CACHE_TTL must not be negative, got %s", cfg.Catalog.CacheTTL)
	}
	switch cfg.Auth.PasswordHasher {
	case "argon2id", "bcrypt":
	default:
		return nil, fmt.Errorf("PASSWORD_HASHER must be argon2id or bcrypt, got %q", cfg.Auth.PasswordHasher)
	}
	return cfg, nil
}

// LoadDB 只讀取 DATABASE_URL，給 migration 工具使用
func LoadDB() (*DBConfig, error) {
	cfg := &DBConfig{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if cfg.URL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	return cfg, nil
}
