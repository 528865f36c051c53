package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisMemoryDB int    `mapstructure:"REDIS_MEMORY_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Continuity memory.
	MemoryTTLSeconds int    `mapstructure:"MEMORY_TTL_SECONDS"`
	DefaultDomain    string `mapstructure:"DEFAULT_DOMAIN"`

	// Binding defaults.
	DefaultTimezone string `mapstructure:"DEFAULT_TIMEZONE"`

	// Decision policy.
	AllowTimeWindows        bool `mapstructure:"ALLOW_TIME_WINDOWS"`
	AllowConstraintOnlyTime bool `mapstructure:"ALLOW_CONSTRAINT_ONLY_TIME"`

	// Intent signal configuration file.
	IntentSignalsPath string `mapstructure:"INTENT_SIGNALS_PATH"`
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
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_MEMORY_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 3)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "bookwise")
	viper.SetDefault("MEMORY_TTL_SECONDS", 3600)
	viper.SetDefault("DEFAULT_DOMAIN", "service")
	viper.SetDefault("DEFAULT_TIMEZONE", "UTC")
	viper.SetDefault("ALLOW_TIME_WINDOWS", true)
	viper.SetDefault("ALLOW_CONSTRAINT_ONLY_TIME", true)
	viper.SetDefault("INTENT_SIGNALS_PATH", "./config/intent_signals.yaml")

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
