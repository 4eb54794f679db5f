package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Session tokens
	JWTSecret string
	JWTExpiry time.Duration

	// Google Sign-In
	GoogleClientID     string
	GoogleTokenInfoURL string
	AuthTimeout        time.Duration

	// Server
	Port        string
	CORSOrigins string
	LogLevel    string

	// Avatar proxy
	ProxyImageHosts string
}

func Load() *Config {
	// Optional .env for local development; real env vars win in deployment.
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "expense_tracker"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "24h"), 24*time.Hour),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleTokenInfoURL: getEnv("GOOGLE_TOKENINFO_URL", "https://oauth2.googleapis.com/tokeninfo"),
		AuthTimeout:        parseDuration(getEnv("AUTH_TIMEOUT", "5s"), 5*time.Second),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		ProxyImageHosts: getEnv("PROXY_IMAGE_HOSTS", "googleusercontent.com"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
