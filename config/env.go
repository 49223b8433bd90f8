package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	Port            string
	OriginURL       string
	JWTSecret       string
	JWTExpiry       time.Duration
	DemoPassword    string
	CatalogSource   string
	DatabaseURL     string
	DBAutoMigrate   bool
	RedisURL        string
	RedisAddr       string
	RedisPassword   string
	GeminiAPIKey    string
	GeminiModel     string
	PriceCacheTTL   time.Duration
	DeliveryFee     int64
	PaymentDelay    time.Duration
	PaymentTimeout  time.Duration
	SessionIdleTTL  time.Duration
	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPass        string
	SMTPFrom        string
	OrderNotifyMail string
}

var AppConfig *Config

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("APP_PORT", getEnv("PORT", "8082")),
		OriginURL:       getEnv("ORIGIN_URL", ""),
		JWTSecret:       getEnv("JWT_SECRET", "secret"),
		JWTExpiry:       getDuration("JWT_EXPIRY", 24*time.Hour),
		DemoPassword:    getEnv("DEMO_PASSWORD", "agrodirect"),
		CatalogSource:   getEnv("CATALOG_SOURCE", "static"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		DBAutoMigrate:   getEnv("DB_AUTO_MIGRATE", "false") == "true",
		RedisURL:        getEnv("REDIS_URL", ""),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", getEnv("API_KEY", "")),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
		PriceCacheTTL:   getDuration("PRICE_CACHE_TTL", 30*time.Minute),
		DeliveryFee:     getInt64("DELIVERY_FEE", 2500),
		PaymentDelay:    getDuration("PAYMENT_DELAY", 2500*time.Millisecond),
		PaymentTimeout:  getDuration("PAYMENT_TIMEOUT", 30*time.Second),
		SessionIdleTTL:  getDuration("SESSION_IDLE_TTL", 2*time.Hour),
		SMTPHost:        getEnv("SMTP_HOST", ""),
		SMTPPort:        int(getInt64("SMTP_PORT", 587)),
		SMTPUser:        getEnv("SMTP_USER", ""),
		SMTPPass:        getEnv("SMTP_PASS", ""),
		SMTPFrom:        getEnv("SMTP_FROM", "orders@agrodirect.ng"),
		OrderNotifyMail: getEnv("ORDER_NOTIFY_EMAIL", ""),
	}

	return AppConfig
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt64(key string, defaultValue int64) int64 {
	value, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil || value == 0 {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
