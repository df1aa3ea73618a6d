package config

import "os"

// Config holds the service-level settings, all sourced from the environment.
type Config struct {
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	HTTPPort      string
	JWTSecret     string

	// AMQPURL enables the event publisher when set.
	AMQPURL       string
	EventExchange string
}

// Load reads the configuration from the environment with local-dev defaults.
func Load() *Config {
	return &Config{
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DB", "thozhahub"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:      getEnv("PORT", "8080"),
		JWTSecret:     getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		AMQPURL:       os.Getenv("RABBITMQ_URL"),
		EventExchange: getEnv("EVENT_EXCHANGE", "thozhahub.events"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
