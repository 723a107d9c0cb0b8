package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisHistoryDB int    `mapstructure:"REDIS_HISTORY_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// MongoDB connection string.
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Gemini API key for the chat fallback and embeddings.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// SMTP settings for appointment notifications.
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`

	// AdminEmail receives the admin alert for every booking.
	AdminEmail string `mapstructure:"ADMIN_EMAIL"`
	// AdminToken protects the admin appointment listing endpoint.
	AdminToken string `mapstructure:"ADMIN_TOKEN"`

	// BusinessTimezone is the local zone business hours are evaluated in.
	BusinessTimezone string `mapstructure:"BUSINESS_TIMEZONE"`
	// BookingTriggers is the phrase vocabulary that starts a booking flow.
	BookingTriggers []string `mapstructure:"BOOKING_TRIGGERS"`
	// ReminderLeadHours is how long before the slot the reminder email fires.
	ReminderLeadHours int `mapstructure:"REMINDER_LEAD_HOURS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_HISTORY_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("ADMIN_TOKEN", "")
	viper.SetDefault("BUSINESS_TIMEZONE", "Asia/Kathmandu")
	viper.SetDefault("BOOKING_TRIGGERS", DefaultBookingTriggers)
	viper.SetDefault("REMINDER_LEAD_HOURS", 24)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// DefaultBookingTriggers is the stock trigger vocabulary. Matching is
// substring based, so short entries like "ok" and "book" fire on any
// message containing them.
var DefaultBookingTriggers = []string{
	"book appointment", "schedule appointment", "set up appointment",
	"make appointment", "book meeting", "schedule meeting",
	"book a call", "schedule a call", "appointment request",
	"reserve appointment", "reserve meeting", "set meeting",
	"booking", "schedule", "reserve", "book me", "book", "ok",
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
