package config

import "os"

type Config struct {
	DatabaseURL    string
	RedisURL       string
	KafkaBrokers   string
	JaegerEndpoint string
	Port           string

	// AllowAmountOverride lets the public checkout path charge an
	// amount other than the order's. Off by default; see DESIGN.md.
	AllowAmountOverride bool
}

func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	jaegerEndpoint := os.Getenv("JAEGER_ENDPOINT")
	if jaegerEndpoint == "" {
		jaegerEndpoint = "jaeger:4318"
	}

	return &Config{
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		RedisURL:            os.Getenv("REDIS_URL"),
		KafkaBrokers:        os.Getenv("KAFKA_BROKERS"),
		JaegerEndpoint:      jaegerEndpoint,
		Port:                port,
		AllowAmountOverride: os.Getenv("ALLOW_AMOUNT_OVERRIDE") == "true",
	}
}
