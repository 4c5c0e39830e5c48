package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Admin     AdminConfig
	Storage   StorageConfig
	Webhooks  WebhookConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	URL string
}

type AdminConfig struct {
	Username  string
	Password  string
	SecretKey string
}

type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
}

type WebhookConfig struct {
	VIPURL          string
	PrivatePartyURL string
}

type RateLimitConfig struct {
	Backend   string // "memory" or "redis"
	RedisAddr string
}

var loaded *Config

func Load() *Config {
	godotenv.Load()

	loaded = &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Admin: AdminConfig{
			Username:  getEnv("ADMIN_USERNAME", "admin"),
			Password:  getEnv("ADMIN_PASSWORD", "admin123"),
			SecretKey: getEnv("ADMIN_SECRET_KEY", "fallback_secret"),
		},
		Storage: StorageConfig{
			Endpoint:  getEnv("STORAGE_ENDPOINT", ""),
			AccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey: getEnv("STORAGE_SECRET_KEY", ""),
			Bucket:    getEnv("STORAGE_BUCKET", "assets"),
			PublicURL: getEnv("STORAGE_PUBLIC_URL", ""),
		},
		Webhooks: WebhookConfig{
			VIPURL:          getEnv("CRM_WEBHOOK_VIP_URL", ""),
			PrivatePartyURL: getEnv("CRM_WEBHOOK_PRIVATE_PARTY_URL", ""),
		},
		RateLimit: RateLimitConfig{
			Backend:   getEnv("RATE_LIMIT_BACKEND", "memory"),
			RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
	}

	return loaded
}

// Get returns the last loaded config, loading on first use.
func Get() *Config {
	if loaded == nil {
		return Load()
	}
	return loaded
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
