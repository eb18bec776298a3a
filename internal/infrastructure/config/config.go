package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

type Config struct {
	Port               string
	StoreType          string
	MongoURI           string
	MongoDB            string
	MessagesCollection string
	NotifyWebhookURL   string
	QuoteTTL           time.Duration
	DispatchBuffer     int
	DispatchWorkers    int
}

// Load reads the service configuration from the environment. DynamoDB
// credentials and table names are read by the database and repository
// packages themselves.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		StoreType:          strings.ToLower(getEnv("STORE_TYPE", StoreDynamoDB)),
		MongoURI:           os.Getenv("MONGO_URI"),
		MongoDB:            getEnv("MONGO_DB", "engagement"),
		MessagesCollection: getEnv("MESSAGES_COLLECTION", "messages"),
		NotifyWebhookURL:   os.Getenv("NOTIFY_WEBHOOK_URL"),
	}

	ttl, err := time.ParseDuration(getEnv("QUOTE_TTL", "168h"))
	if err != nil {
		return nil, fmt.Errorf("QUOTE_TTL: %w", err)
	}
	cfg.QuoteTTL = ttl

	if cfg.DispatchBuffer, err = getEnvInt("DISPATCH_BUFFER", 256); err != nil {
		return nil, err
	}
	if cfg.DispatchWorkers, err = getEnvInt("DISPATCH_WORKERS", 2); err != nil {
		return nil, err
	}

	switch cfg.StoreType {
	case StoreDynamoDB, StoreMemory:
	default:
		return nil, fmt.Errorf("STORE_TYPE: unsupported store %q", cfg.StoreType)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s: expected a positive integer, got %q", key, value)
	}
	return n, nil
}
