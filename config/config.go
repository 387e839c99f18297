package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Document store.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis (booking session store).
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Firebase project (document store / object storage / auth).
	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	StorageBucket           string `mapstructure:"STORAGE_BUCKET"`

	// Object storage backend: "firebase" or "cloudinary".
	StorageBackend      string `mapstructure:"STORAGE_BACKEND"`
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`

	// Payment gateway.
	RazorpayKeyID     string `mapstructure:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret string `mapstructure:"RAZORPAY_KEY_SECRET"`

	// Fixed consultation rate in rupees for a one-hour session.
	ConsultationRate int64 `mapstructure:"CONSULTATION_RATE"`
}

// Load reads configuration from config.yaml (if present) and the
// environment. Credentials for the external services have no defaults;
// their absence is a startup error for the operator, never something
// surfaced to an end user mid-flow.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	// Unmarshal only walks keys viper already knows about, so keys with no
	// default must be bound explicitly to be picked up from the environment.
	for _, key := range []string{
		"FIREBASE_PROJECT_ID",
		"FIREBASE_CREDENTIALS_FILE",
		"STORAGE_BUCKET",
		"RAZORPAY_KEY_ID",
		"RAZORPAY_KEY_SECRET",
		"CLOUDINARY_CLOUD_NAME",
		"CLOUDINARY_API_KEY",
		"CLOUDINARY_API_SECRET",
	} {
		if err := viper.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "vishalaksha")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("STORAGE_BACKEND", "firebase")
	viper.SetDefault("CONSULTATION_RATE", 11000)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.StorageBucket == "" {
		cfg.StorageBucket = cfg.FirebaseProjectID + ".firebasestorage.app"
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	required := map[string]string{
		"FIREBASE_PROJECT_ID":       c.FirebaseProjectID,
		"FIREBASE_CREDENTIALS_FILE": c.FirebaseCredentialsFile,
		"RAZORPAY_KEY_ID":           c.RazorpayKeyID,
		"RAZORPAY_KEY_SECRET":       c.RazorpayKeySecret,
	}
	if c.StorageBackend == "cloudinary" {
		required["CLOUDINARY_CLOUD_NAME"] = c.CloudinaryCloudName
		required["CLOUDINARY_API_KEY"] = c.CloudinaryAPIKey
		required["CLOUDINARY_API_SECRET"] = c.CloudinaryAPISecret
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("required configuration %s is not set", name)
		}
	}
	if c.StorageBackend != "firebase" && c.StorageBackend != "cloudinary" {
		return fmt.Errorf("unknown STORAGE_BACKEND %q; allowed values are 'firebase' and 'cloudinary'", c.StorageBackend)
	}
	return nil
}

// IsProduction reports whether the server runs with the production profile.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
