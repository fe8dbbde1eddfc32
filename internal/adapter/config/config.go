package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Gateway  *Gateway
	Pricing  *Pricing
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

// Gateway configures the external payment processor client.
type Gateway struct {
	BaseURL        string `env:"GATEWAY_ADDRESS"`
	SecretKey      string `env:"GATEWAY_SECRET_KEY"`
	WebhookSecret  string `env:"GATEWAY_WEBHOOK_SECRET"`
	Currency       string `env:"GATEWAY_CURRENCY" envDefault:"usd"`
	TimeoutSeconds int    `env:"GATEWAY_TIMEOUT_SECONDS" envDefault:"10"`
}

// Pricing configures the shipping and tax calculators. Amounts are decimal
// strings parsed at startup.
type Pricing struct {
	TaxRate           string `env:"TAX_RATE" envDefault:"0.075"`
	HomeCountry       string `env:"SHIPPING_HOME_COUNTRY" envDefault:"USA"`
	DomesticRate      string `env:"SHIPPING_DOMESTIC_RATE" envDefault:"5.00"`
	InternationalRate string `env:"SHIPPING_INTERNATIONAL_RATE" envDefault:"20.00"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var gateway Gateway
	var pricing Pricing
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&gateway.BaseURL, "g", `https://api.stripe.com`, "Payment gateway address")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&gateway)
	if err != nil {
		return nil, fmt.Errorf("error parsing gateway config: %w", err)
	}
	err = env.Parse(&pricing)
	if err != nil {
		return nil, fmt.Errorf("error parsing pricing config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Gateway:  &gateway,
		Pricing:  &pricing,
		App:      &app,
	}

	return &config, nil
}
