package main

import (
	"fmt"
	"os"
)

// Config holds all environment variables for the service.
type Config struct {
	Port               string
	Env                string // "production" or "development", picks the logger
	MongoURL           string
	DBName             string
	StripeSecretKey    string
	CheckoutSuccessURL string
	CheckoutCancelURL  string
}

// LoadConfig reads configuration from the environment. The Stripe key has no
// default; the process refuses to start without it.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8001"),
		Env:                getEnv("ENV", "development"),
		MongoURL:           getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:             getEnv("DB_NAME", "artist_portfolio"),
		StripeSecretKey:    os.Getenv("STRIPE_API_KEY"),
		CheckoutSuccessURL: getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:3000/success?session_id={CHECKOUT_SESSION_ID}"),
		CheckoutCancelURL:  getEnv("CHECKOUT_CANCEL_URL", "http://localhost:3000"),
	}

	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("STRIPE_API_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
