package config

import (
	"fmt"
	"os"
)

// Config holds all environment variables for the backend. It is built once
// at startup and treated as read-only afterwards.
type Config struct {
	Env               string // "production" or "development"
	Port              string // HTTP port (default: 5000)
	MongoURI          string // MongoDB connection string
	MongoDB           string // MongoDB database name
	RedisURL          string // optional; availability caching is skipped when empty
	RazorpayKeyID     string // Razorpay API key id
	RazorpayKeySecret string // Razorpay API key secret, also the HMAC signing secret
	Currency          string // ISO currency code sent to the gateway (default: INR)
	SMTPHost          string // SMTP host (default: smtp.gmail.com)
	SMTPPort          string // SMTP port (default: 587)
	EmailUser         string // sender address / SMTP username
	EmailPass         string // SMTP password
}

// Load reads environment variables into a Config and validates them.
func Load() (*Config, error) {
	cfg := &Config{
		Env:               os.Getenv("ENV"),
		Port:              os.Getenv("PORT"),
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDB:           os.Getenv("MONGO_DB"),
		RedisURL:          os.Getenv("REDIS_URL"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		Currency:          os.Getenv("CURRENCY"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          os.Getenv("SMTP_PORT"),
		EmailUser:         os.Getenv("EMAIL_USER"),
		EmailPass:         os.Getenv("EMAIL_PASS"),
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "penta_cabs"
	}
	if cfg.Currency == "" {
		cfg.Currency = "INR"
	}
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = "smtp.gmail.com"
	}
	if cfg.SMTPPort == "" {
		cfg.SMTPPort = "587"
	}

	// Validate required fields
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.RazorpayKeyID == "" {
		return nil, fmt.Errorf("RAZORPAY_KEY_ID is required")
	}
	if cfg.RazorpayKeySecret == "" {
		return nil, fmt.Errorf("RAZORPAY_KEY_SECRET is required")
	}
	if cfg.EmailUser == "" {
		return nil, fmt.Errorf("EMAIL_USER is required")
	}
	if cfg.EmailPass == "" {
		return nil, fmt.Errorf("EMAIL_PASS is required")
	}

	return cfg, nil
}
