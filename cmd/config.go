package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix is prepended to every variable: ORDERDESK_HTTP_PORT and so on.
const envPrefix = "ORDERDESK"

type Config struct {
	HTTPPort       string `envconfig:"HTTP_PORT"       default:"8080"`
	DBDriver       string `envconfig:"DB_DRIVER"       default:"sqlite"`
	DBDSN          string `envconfig:"DB_DSN"          default:"orderdesk.db"`
	OrderPrefix    string `envconfig:"ORDER_PREFIX"    default:"ORD"`
	DraftsSchedule string `envconfig:"DRAFTS_SCHEDULE" default:"0 0 6 * * *"`
	Timezone       string `envconfig:"TIMEZONE"        default:"Local"`
	LogLevel       string `envconfig:"LOG_LEVEL"       default:"info"`
	LogFormat      string `envconfig:"LOG_FORMAT"      default:"json"`
}

// LoadConfig reads the given .env files, when present, and then the process
// environment. Variables already set in the environment win over .env values.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

// Location resolves Timezone; "Local" and "" mean the host zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}
