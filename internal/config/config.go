package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type Config struct {
	Port         string `env:"PORT,default=8080"`
	DatabasePath string `env:"DB_PATH,default=data/tally.db"`
	SecretKey    string `env:"SECRET_KEY,default=change_me_in_production"`
	CookieSecure bool   `env:"COOKIE_SECURE,default=false"`
	Timezone     string `env:"TZ,default=UTC"`
}

// Load reads an optional .env file, then decodes the environment into a
// Config. A missing .env is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode environment: %w", err)
	}
	return cfg, nil
}
