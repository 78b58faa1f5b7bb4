package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Addr          string        `envconfig:"ADDR" default:":8080"`
	DBDriver      string        `envconfig:"DB_DRIVER" default:"sqlite3"`
	DBDSN         string        `envconfig:"DB_DSN" default:"grouplift.db"`
	JWTSecret     string        `envconfig:"JWT_SECRET" default:"super-secret-key-change-me-in-production"`
	TokenDuration time.Duration `envconfig:"TOKEN_DURATION" default:"24h"`
}

// Load reads configuration from the environment, after loading a .env file
// if one is present.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
