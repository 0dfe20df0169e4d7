package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds everything the service needs at startup. Values come from the
// environment, with a .env file loaded first when running locally.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	MongoURI    string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB     string `env:"MONGO_DB" envDefault:"pharmanature"`
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"*"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Seed        bool   `env:"SEED" envDefault:"true"`
	// CartTTLMinutes is how long an idle cart session is kept alive.
	CartTTLMinutes int `env:"CART_TTL_MINUTES" envDefault:"120"`
}

// Load reads the .env file if present (local development; in production the
// platform injects the environment directly) and parses the configuration.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			logrus.WithError(err).Warn("could not load .env file")
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
