package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// envPrefix namespaces every variable read by parseEnv.
const envPrefix = "TODOKEEPER_"

type envConfig struct {
	EndpointAddrHTTP            *string        `env:"HTTP_ADDR"`
	EndpointAddrGRPC            *string        `env:"GRPC_ADDR"`
	SecretKey                   *string        `env:"SECRET_KEY"`
	AccessTokenValidityDuration *time.Duration `env:"ACCESS_TOKEN_TTL"`
	AllowedOrigin               *string        `env:"ALLOWED_ORIGIN"`
	ShutdownTimeout             *time.Duration `env:"SHUTDOWN_TIMEOUT"`
	LogLevel                    *string        `env:"LOG_LEVEL"`
}

// parseEnv overlays TODOKEEPER_* environment variables that are set.
func parseEnv(config *Config) error {
	var e envConfig
	if err := env.ParseWithOptions(&e, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	setString(&config.EndpointAddrHTTP, e.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, e.EndpointAddrGRPC)
	setString(&config.SecretKey, e.SecretKey)
	setString(&config.AllowedOrigin, e.AllowedOrigin)
	setString(&config.LogLevel, e.LogLevel)
	if e.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = *e.AccessTokenValidityDuration
	}
	if e.ShutdownTimeout != nil {
		config.ShutdownTimeout = *e.ShutdownTimeout
	}

	return nil
}
