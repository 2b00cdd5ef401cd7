package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full application configuration, loaded from YAML.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	MySQL         MySQLConfig         `yaml:"mysql"`
	Redis         RedisConfig         `yaml:"redis"`
	Kafka         KafkaConfig         `yaml:"kafka"`
	Auth          AuthConfig          `yaml:"auth"`
	App           AppConfig           `yaml:"app"`
	Logging       LoggingConfig       `yaml:"logging"`
	Observability ObservabilityConfig `yaml:"observability"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type MySQLConfig struct {
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"maxOpenConns"`
	MaxIdleConns           int    `yaml:"maxIdleConns"`
	ConnMaxLifetimeMinutes int    `yaml:"connMaxLifetimeMinutes"`
	AutoMigrate            bool   `yaml:"autoMigrate"`
}

// ConnMaxLifetime returns the pool lifetime as a duration.
func (c MySQLConfig) ConnMaxLifetime() time.Duration {
	return time.Duration(c.ConnMaxLifetimeMinutes) * time.Minute
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers              []string `yaml:"brokers"`
	CacheInvalidateTopic string   `yaml:"cacheInvalidateTopic"`
	GroupID              string   `yaml:"groupId"`
}

type AuthConfig struct {
	SessionTTLSeconds int `yaml:"sessionTtlSeconds"`
	BcryptCost        int `yaml:"bcryptCost"`
}

// SessionTTL returns the session lifetime as a duration.
func (c AuthConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLSeconds) * time.Second
}

type AppConfig struct {
	DefaultLocale       string `yaml:"defaultLocale"`
	ShopCacheTTLMinutes int    `yaml:"shopCacheTtlMinutes"`
}

// ShopCacheTTL returns the shop cache lifetime as a duration.
func (c AppConfig) ShopCacheTTL() time.Duration {
	return time.Duration(c.ShopCacheTTLMinutes) * time.Minute
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ObservabilityConfig struct {
	ServiceName string        `yaml:"serviceName"`
	Environment string        `yaml:"environment"`
	Tracing     TracingConfig `yaml:"tracing"`
	Metrics     MetricsConfig `yaml:"metrics"`
	Logging     ObsLogging    `yaml:"logging"`
}

type TracingConfig struct {
	Enabled          bool    `yaml:"enabled"`
	OTLPGrpcEndpoint string  `yaml:"otlpGrpcEndpoint"`
	Insecure         bool    `yaml:"insecure"`
	SampleRate       float64 `yaml:"sampleRate"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type ObsLogging struct {
	RequestIDHeader string `yaml:"requestIdHeader"`
}

// Load reads and parses the YAML config at path, applying defaults.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// MustLoad is Load that panics on failure; used from main.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.MySQL.MaxOpenConns == 0 {
		c.MySQL.MaxOpenConns = 20
	}
	if c.MySQL.MaxIdleConns == 0 {
		c.MySQL.MaxIdleConns = 5
	}
	if c.MySQL.ConnMaxLifetimeMinutes == 0 {
		c.MySQL.ConnMaxLifetimeMinutes = 30
	}
	if c.Auth.SessionTTLSeconds == 0 {
		c.Auth.SessionTTLSeconds = 1800
	}
	if c.App.DefaultLocale == "" {
		c.App.DefaultLocale = "en"
	}
	if c.App.ShopCacheTTLMinutes == 0 {
		c.App.ShopCacheTTLMinutes = 30
	}
	if c.Kafka.CacheInvalidateTopic == "" {
		c.Kafka.CacheInvalidateTopic = "watchmapper.shop-cache-invalidate"
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "watchmapper-backend"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
