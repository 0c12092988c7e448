package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP   HTTPConfig
	Mongo  MongoConfig
	Admin  AdminConfig
	Notify NotifyConfig
	NATS   NATSConfig
}

type HTTPConfig struct {
	Port string
}

type MongoConfig struct {
	URI string
	DB  string
}

type AdminConfig struct {
	Username string
	Password string
}

// NotifyConfig targets the external Telegram chat that receives order
// summaries. Empty BotToken or ChatID disables notifications.
type NotifyConfig struct {
	BotToken string
	ChatID   string
	APIBase  string
}

type NATSConfig struct {
	URL string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTP: HTTPConfig{
			Port: getEnv("HTTP_PORT", "8000"),
		},
		Mongo: MongoConfig{
			URI: getEnv("DATABASE_URL", "mongodb://localhost:27017"),
			DB:  getEnv("MONGO_DB", "pempek_domino"),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		Notify: NotifyConfig{
			BotToken: getEnv("NOTIFY_BOT_TOKEN", ""),
			ChatID:   getEnv("NOTIFY_CHAT_ID", ""),
			APIBase:  getEnv("NOTIFY_API_BASE", "https://api.telegram.org"),
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.HTTP.Port == "" {
		return fmt.Errorf("HTTP_PORT is required")
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Mongo.DB == "" {
		return fmt.Errorf("MONGO_DB is required")
	}
	if c.Admin.Username == "" {
		return fmt.Errorf("ADMIN_USERNAME is required")
	}
	if c.Admin.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
