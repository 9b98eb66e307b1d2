package utils

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Pricing  PricingConfig
	Payment  PaymentConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type AdminConfig struct {
	// Bcrypt hash of the shared admin password. No default value: the
	// admin panel stays locked until it is configured.
	PasswordHash       string
	SessionExpiryHours int
}

type PricingConfig struct {
	DefaultHourlyRate   int64
	DefaultMinimumHours int
	// OutstationFeeSet distinguishes "fee is 0" from "fee not configured".
	// Towing requests without a configured fee need a manual quote.
	OutstationFee    int64
	OutstationFeeSet bool
}

type PaymentConfig struct {
	Link string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("ADMIN_SESSION_EXPIRY_HOURS", 1)
	viper.SetDefault("DEFAULT_HOURLY_RATE", 550)
	viper.SetDefault("DEFAULT_MIN_HOURS", 3)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Admin: AdminConfig{
			PasswordHash:       viper.GetString("ADMIN_PASSWORD_HASH"),
			SessionExpiryHours: viper.GetInt("ADMIN_SESSION_EXPIRY_HOURS"),
		},
		Pricing: PricingConfig{
			DefaultHourlyRate:   viper.GetInt64("DEFAULT_HOURLY_RATE"),
			DefaultMinimumHours: viper.GetInt("DEFAULT_MIN_HOURS"),
			OutstationFee:       viper.GetInt64("DEFAULT_OUTSTATION_FEE"),
			OutstationFeeSet:    viper.IsSet("DEFAULT_OUTSTATION_FEE"),
		},
		Payment: PaymentConfig{
			Link: viper.GetString("PAYMENT_LINK"),
		},
	}

	// Fail closed instead of falling back to a baked-in secret
	if config.Admin.PasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}

	if config.Pricing.DefaultMinimumHours < 1 {
		config.Pricing.DefaultMinimumHours = 1
	}

	return config, nil
}
