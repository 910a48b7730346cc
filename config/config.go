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

	// MongoDB configuration. Empty URL means the in-memory ledger store is
	// used, which keeps the demo runnable without infrastructure.
	MongoURL      string `mapstructure:"MONGO_URL"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
	RedisQueueDB   int    `mapstructure:"REDIS_QUEUE_DB"`

	// Schedule knobs for the slot calculator and booking flow.
	SlotDurationMin      int `mapstructure:"SLOT_DURATION_MIN"`      // slot granularity, minutes
	MinBookingHoursAhead int `mapstructure:"MIN_BOOKING_HOURS_AHEAD"` // lead time, hours
	BookingDaysAhead     int `mapstructure:"BOOKING_DAYS_AHEAD"`     // date-picker depth, days
	ReminderLeadHours    int `mapstructure:"REMINDER_LEAD_HOURS"`    // reminder fires this long before the slot

	// Studio display settings.
	StudioName     string `mapstructure:"STUDIO_NAME"`
	StudioCurrency string `mapstructure:"STUDIO_CURRENCY"`
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
	viper.SetDefault("MONGO_URL", "")
	viper.SetDefault("MONGO_DATABASE", "glowstudio")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("SLOT_DURATION_MIN", 30)
	viper.SetDefault("MIN_BOOKING_HOURS_AHEAD", 2)
	viper.SetDefault("BOOKING_DAYS_AHEAD", 14)
	viper.SetDefault("REMINDER_LEAD_HOURS", 2)
	viper.SetDefault("STUDIO_NAME", "Glow Studio")
	viper.SetDefault("STUDIO_CURRENCY", "₽")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
