package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Remote schedule API.
	APIBaseURL        string `mapstructure:"API_BASE_URL"`
	APITimeoutSeconds int    `mapstructure:"API_TIMEOUT_SECONDS"`

	// Dashboard session behaviour.
	NotificationTTLSeconds int `mapstructure:"NOTIFICATION_TTL_SECONDS"`
	SessionTTLMinutes      int `mapstructure:"SESSION_TTL_MINUTES"`
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
	viper.SetDefault("APP_PORT", "3000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("API_BASE_URL", "http://localhost:5000/api")
	viper.SetDefault("API_TIMEOUT_SECONDS", 15)
	viper.SetDefault("NOTIFICATION_TTL_SECONDS", 3)
	viper.SetDefault("SESSION_TTL_MINUTES", 720)

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

// APITimeout returns the remote API request timeout as a duration.
func APITimeout() time.Duration {
	return time.Duration(AppConfig.APITimeoutSeconds) * time.Second
}

// NotificationTTL returns how long a dashboard notification stays visible.
func NotificationTTL() time.Duration {
	return time.Duration(AppConfig.NotificationTTLSeconds) * time.Second
}

// SessionTTL returns the lifetime of a browser session.
func SessionTTL() time.Duration {
	return time.Duration(AppConfig.SessionTTLMinutes) * time.Minute
}
