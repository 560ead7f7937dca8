// Package config reads server settings from the environment, after loading
// a .env file when one is present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr       string
	TLSCert    string
	TLSKey     string
	TokenKey   []byte
	ShareTTL   time.Duration
	RateLimit  float64
	RateBurst  int
	CORSOrigin string
}

// TLS reports whether both certificate and key are configured.
func (c Config) TLS() bool { return c.TLSCert != "" && c.TLSKey != "" }

// Load reads .env files (missing ones are skipped) and then the environment.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
		log.Printf("Loaded environment from %s", f)
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	c := Config{
		Addr:       getEnv("ADDR", ":8080"),
		TLSCert:    os.Getenv("TLS_CERT"),
		TLSKey:     os.Getenv("TLS_KEY"),
		TokenKey:   []byte(os.Getenv("TOKEN_KEY")),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
	}
	var err error
	if c.ShareTTL, err = time.ParseDuration(getEnv("SHARE_TTL", "720h")); err != nil {
		return Config{}, fmt.Errorf("SHARE_TTL: %w", err)
	}
	if c.RateLimit, err = strconv.ParseFloat(getEnv("RATE_LIMIT", "5"), 64); err != nil || c.RateLimit <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT must be a positive number: %q", os.Getenv("RATE_LIMIT"))
	}
	if c.RateBurst, err = strconv.Atoi(getEnv("RATE_BURST", "10")); err != nil || c.RateBurst <= 0 {
		return Config{}, fmt.Errorf("RATE_BURST must be a positive integer: %q", os.Getenv("RATE_BURST"))
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		return Config{}, errors.New("TLS_CERT and TLS_KEY must be set together")
	}
	return c, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
