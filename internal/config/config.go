// Package config centralises configuration parsing for the signup service.
package config

import (
	"os"
	"strings"
	"time"
)

// Config captures runtime configuration values for the signup service.
type Config struct {
	HTTPAddress    string
	CORSOrigin     string
	HTTPTimeout    time.Duration
	KafkaBrokers   []string
	EventTopic     string
	ConsumerGroup  string
	ConsumerTopics []string
	MetricsAddress string
}

// Load reads environment variables into Config, applying sensible
// defaults for local dev. KAFKA_BROKERS defaults to empty so the
// service runs without a broker.
func Load() Config {
	return Config{
		HTTPAddress:    getEnv("HTTP_ADDRESS", ":8080"),
		CORSOrigin:     getEnv("CORS_ORIGIN", "http://localhost:5173"),
		HTTPTimeout:    getDurationEnv("HTTP_TIMEOUT", 5*time.Second),
		KafkaBrokers:   splitAndTrim(getEnv("KAFKA_BROKERS", "")),
		EventTopic:     getEnv("EVENT_TOPIC", "signup_events"),
		ConsumerGroup:  getEnv("CONSUMER_GROUP_ID", "signup-roster-consumer"),
		ConsumerTopics: splitAndTrim(getEnv("CONSUMER_TOPICS", "signup_events")),
		MetricsAddress: getEnv("METRICS_ADDRESS", ":9195"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
