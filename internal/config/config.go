package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Si DB_DSN está vacío se usan repos in-memory.
	DBDSN string `mapstructure:"DB_DSN"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
	AppName   string `mapstructure:"APP_NAME"`

	// Sin secreto => modo dev (header X-Debug-User-ID).
	AuthJWTSecret string `mapstructure:"AUTH_JWT_SECRET"`
	AuthJWTIssuer string `mapstructure:"AUTH_JWT_ISSUER"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	SOSStream     string `mapstructure:"SOS_STREAM"`
	SOSWebhookURL string `mapstructure:"SOS_WEBHOOK_URL"`

	MQTTBroker      string `mapstructure:"MQTT_BROKER"`
	MQTTClientID    string `mapstructure:"MQTT_CLIENT_ID"`
	MQTTUsername    string `mapstructure:"MQTT_USERNAME"`
	MQTTPassword    string `mapstructure:"MQTT_PASSWORD"`
	MQTTTopicPrefix string `mapstructure:"MQTT_TOPIC_PREFIX"`
}

var keys = []string{
	"PORT", "ENV", "DB_DSN",
	"LOG_LEVEL", "LOG_FORMAT", "APP_NAME",
	"AUTH_JWT_SECRET", "AUTH_JWT_ISSUER",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "SOS_STREAM", "SOS_WEBHOOK_URL",
	"MQTT_BROKER", "MQTT_CLIENT_ID", "MQTT_USERNAME", "MQTT_PASSWORD", "MQTT_TOPIC_PREFIX",
}

// Load lee env vars y, si existe, un archivo .env en el directorio actual.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile es Load con un path explícito para el archivo de config (puede no existir).
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
	}
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("APP_NAME", "maternal-care-api")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SOS_STREAM", "sos-alerts")
	v.SetDefault("MQTT_CLIENT_ID", "maternal-care-api")
	v.SetDefault("MQTT_TOPIC_PREFIX", "mews")

	// Unmarshal solo ve env vars que estén "bindeadas".
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// El archivo es opcional.
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Port = strings.TrimPrefix(strings.TrimSpace(cfg.Port), ":")
	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT is required")
	}
	if cfg.IsProduction() && cfg.AuthJWTSecret == "" {
		return nil, fmt.Errorf("AUTH_JWT_SECRET is required in production")
	}

	return cfg, nil
}

func (c *Config) Addr() string { return ":" + c.Port }

func (c *Config) IsDev() bool { return c.Env == "development" }

func (c *Config) IsProduction() bool { return c.Env == "production" }
