package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName   string
	AppEnv    string
	AppPort   string
	DataDir   string
	JWTSecret string
	TokenTTL  time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("GRADEBOOK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Gradebook API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("data.dir", "data")
	v.SetDefault("token.ttl", "12h")

	ttlString := v.GetString("token.ttl")
	if ttlString == "" {
		ttlString = "12h"
	}

	ttl, err := time.ParseDuration(ttlString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid token ttl: %w", err)
	}

	cfg := Config{
		AppName:   v.GetString("app.name"),
		AppEnv:    v.GetString("app.env"),
		AppPort:   v.GetString("app.port"),
		DataDir:   v.GetString("data.dir"),
		JWTSecret: v.GetString("jwt.secret"),
		TokenTTL:  ttl,
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	return cfg, nil
}
