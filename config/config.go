package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// API is the remote Assettone Estates service. Exactly one base URL:
	// every screen goes through this value.
	API struct {
		BaseURL string `env:"API_BASE_URL" envDefault:"https://assettoneestates.pythonanywhere.com"`
	}

	Server struct {
		// Port the console gateway listens on
		Port string `env:"CONSOLE_PORT" envDefault:"5250"`

		// Origins allowed to call the gateway from a browser
		AllowedOrigins []string `env:"CONSOLE_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	}

	Session struct {
		// Path of the sqlite file holding the operator session
		DBPath string `env:"SESSION_DB_PATH" envDefault:"console.db"`
	}

	Log struct {
		// Log level: debug, info, warn or error
		Level string `env:"LOG_LEVEL" envDefault:"info"`
	}
}

func LoadConfig() (*Config, error) {
	// A missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
