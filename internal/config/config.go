package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 服务配置
type Config struct {
	Port     string
	Env      string
	Locale   string
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	S3       S3Config
	Advisor  AdvisorConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Session  SessionConfig
}

// StoreConfig 持久化后端：memory | db | redis | s3
type StoreConfig struct {
	Provider string
}

type DatabaseConfig struct {
	Driver  string // postgres | sqlite
	DSN     string
	Verbose bool
}

type RedisConfig struct {
	URL    string
	Prefix string
}

type S3Config struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
	BasePath  string
}

type AdvisorConfig struct {
	APIKey       string
	Model        string
	Transport    string // sdk | rest
	BaseURL      string
	ProxyURL     string
	Timeout      time.Duration
	Temperature  float32
	Cooldown     time.Duration // 同一设备两次提问的最小间隔
	LogRetention time.Duration // 调用日志保留时长
}

type JWTConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type AdminConfig struct {
	Email    string
	Password string
}

type SessionConfig struct {
	IdleTTL   time.Duration
	SweepCron string
}

// IsProduction 是否生产环境
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load 读取配置：环境变量 > .env > 默认值
// 键名中的 "." 对应环境变量中的 "_"，如 advisor.api_key -> ADVISOR_API_KEY
func Load() (*Config, error) {
	// .env 可选
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("读取 .env 失败: %w", err)
	}
	return FromViper(viper.New())
}

// FromViper 从给定 viper 实例解析配置，测试可直接注入
func FromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("advisor.api_key", "ADVISOR_API_KEY", "GEMINI_API_KEY")

	cfg := &Config{
		Port:   v.GetString("server.port"),
		Env:    v.GetString("app.env"),
		Locale: v.GetString("locale"),
		Store: StoreConfig{
			Provider: strings.ToLower(strings.TrimSpace(v.GetString("store.provider"))),
		},
		Database: DatabaseConfig{
			Driver:  v.GetString("db.driver"),
			DSN:     v.GetString("db.dsn"),
			Verbose: v.GetBool("db.verbose"),
		},
		Redis: RedisConfig{
			URL:    v.GetString("redis.url"),
			Prefix: v.GetString("redis.prefix"),
		},
		S3: S3Config{
			Bucket:    v.GetString("s3.bucket"),
			Region:    v.GetString("s3.region"),
			AccessKey: v.GetString("s3.access_key"),
			SecretKey: v.GetString("s3.secret_key"),
			Endpoint:  v.GetString("s3.endpoint"),
			BasePath:  v.GetString("s3.base_path"),
		},
		Advisor: AdvisorConfig{
			APIKey:       strings.TrimSpace(v.GetString("advisor.api_key")),
			Model:        v.GetString("advisor.model"),
			Transport:    strings.ToLower(v.GetString("advisor.transport")),
			BaseURL:      v.GetString("advisor.base_url"),
			ProxyURL:     v.GetString("advisor.proxy_url"),
			Timeout:      v.GetDuration("advisor.timeout"),
			Temperature:  float32(v.GetFloat64("advisor.temperature")),
			Cooldown:     v.GetDuration("advisor.cooldown"),
			LogRetention: v.GetDuration("advisor.log_retention"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("jwt.secret"),
			AccessTTL:  v.GetDuration("jwt.access_ttl"),
			RefreshTTL: v.GetDuration("jwt.refresh_ttl"),
		},
		Admin: AdminConfig{
			Email:    v.GetString("admin.email"),
			Password: v.GetString("admin.password"),
		},
		Session: SessionConfig{
			IdleTTL:   v.GetDuration("session.idle_ttl"),
			SweepCron: v.GetString("session.sweep_cron"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("locale", "bn-BD")

	v.SetDefault("store.provider", "memory")
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "")
	v.SetDefault("db.verbose", false)
	v.SetDefault("redis.url", "redis://localhost:6379/0")
	v.SetDefault("redis.prefix", "buyingbd:")
	v.SetDefault("s3.base_path", "buyingbd")

	v.SetDefault("advisor.model", "gemini-3-pro-preview")
	v.SetDefault("advisor.transport", "sdk")
	v.SetDefault("advisor.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("advisor.timeout", "60s")
	v.SetDefault("advisor.temperature", 0.3)
	v.SetDefault("advisor.cooldown", "2s")
	v.SetDefault("advisor.log_retention", "2160h")

	v.SetDefault("jwt.secret", "buyingbd-secret-key-change-in-production")
	v.SetDefault("jwt.access_ttl", "2h")
	v.SetDefault("jwt.refresh_ttl", "168h")

	v.SetDefault("admin.email", "admin@buyingbd.com")
	v.SetDefault("admin.password", "admin123")

	v.SetDefault("session.idle_ttl", "30m")
	v.SetDefault("session.sweep_cron", "0 */5 * * * *")
}

func (c *Config) validate() error {
	switch c.Store.Provider {
	case "memory", "db", "redis", "s3":
	default:
		return fmt.Errorf("不支持的存储后端: %s", c.Store.Provider)
	}
	switch c.Advisor.Transport {
	case "sdk", "rest":
	default:
		return fmt.Errorf("不支持的顾问调用方式: %s", c.Advisor.Transport)
	}
	if c.Store.Provider == "s3" && c.S3.Bucket == "" {
		return errors.New("s3 存储需要配置 S3_BUCKET")
	}
	if c.IsProduction() && c.JWT.Secret == "buyingbd-secret-key-change-in-production" {
		return errors.New("生产环境必须配置 JWT_SECRET")
	}
	return nil
}
