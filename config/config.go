// Package config loads the quote calculator's environment settings.
package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"shippingquote/services"
)

type Config struct {
	ChargePolicy services.ChargePolicy
	QuoteIDMode  string
	QuoteTitle   string
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) Config {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Println("config: no .env file found (using environment variables)")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a getenv-style lookup.
func FromEnv(getenv func(string) string) Config {
	title := strings.TrimSpace(getenv("QUOTE_TITLE"))
	if title == "" {
		title = services.DefaultQuoteTitle
	}
	mode := strings.ToLower(strings.TrimSpace(getenv("QUOTE_ID_MODE")))
	if mode == "" {
		mode = "random"
	}
	return Config{
		ChargePolicy: services.ParseChargePolicy(strings.ToLower(strings.TrimSpace(getenv("QUOTE_CHARGE_POLICY")))),
		QuoteIDMode:  mode,
		QuoteTitle:   title,
	}
}
