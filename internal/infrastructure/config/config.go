package config

import (
	"log"

	"github.com/caarlos0/env/v11"
)

// Config holds the server-level settings. Repository table names stay on
// per-repository env defaults; this struct covers everything the wiring in
// routes needs up front.
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	JWTSecret string `env:"JWT_SECRET" envDefault:"CHANGE_ME"`

	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`

	ImagesBucket        string `env:"IMAGES_BUCKET" envDefault:"portfolio-images"`
	PublicAssetsBaseURL string `env:"PUBLIC_ASSETS_BASE_URL"`

	TranslateAPIURL string `env:"TRANSLATE_API_URL"`
	TranslateAPIKey string `env:"TRANSLATE_API_KEY"`
	GeoIPAPIURL     string `env:"GEOIP_API_URL" envDefault:"https://ipapi.co"`
}

// Load parses the environment. Missing optional integrations (payments,
// translation) are allowed here and handled at wiring time.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to parse environment config: %v", err)
	}
	if cfg.JWTSecret == "CHANGE_ME" {
		log.Printf("[config] JWT_SECRET not set; using insecure default")
	}
	return cfg
}
