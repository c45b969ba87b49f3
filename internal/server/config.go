package server

import "os"

// Config holds server settings loaded from the environment.
type Config struct {
	Addr        string
	DBPath      string
	RedisAddr   string
	AdminToken  string
	JWTSecret   string
	CORSOrigins string
	BookingURL  string
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Addr:        getEnv("MINDMAKER_HTTP_ADDR", ":8080"),
		DBPath:      os.Getenv("MINDMAKER_DB"),
		RedisAddr:   os.Getenv("MINDMAKER_REDIS_ADDR"),
		AdminToken:  os.Getenv("MINDMAKER_ADMIN_TOKEN"),
		JWTSecret:   getEnv("MINDMAKER_JWT_SECRET", "change-me-in-production"),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		BookingURL:  os.Getenv("MINDMAKER_BOOKING_URL"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
