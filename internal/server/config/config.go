// Package config handles configuration for the server component:
// defaults, an optional JSON file, TODOKEEPER_* environment variables and
// command-line flags, applied in that order.
package config

import "time"

// Config holds runtime settings for the todokeeper server.
//
// Fields:
//   - EndpointAddrHTTP / EndpointAddrGRPC: bind addresses of the two transports.
//   - SecretKey: HMAC secret for signing and verifying access tokens (HS256).
//     Changing it invalidates every token issued before.
//   - AccessTokenValidityDuration: lifetime of issued access tokens.
//   - AllowedOrigin: the single origin allowed by CORS; empty disables CORS.
//   - ShutdownTimeout: grace period for in-flight HTTP requests on shutdown.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrHTTP            string
	EndpointAddrGRPC            string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	AllowedOrigin               string
	ShutdownTimeout             time.Duration
	LogLevel                    string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret is insecure for production and must be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = "127.0.0.1:8080"
	c.EndpointAddrGRPC = "127.0.0.1:50051"
	c.SecretKey = "deabeef"
	c.AccessTokenValidityDuration = 14 * 24 * time.Hour
	c.AllowedOrigin = "http://localhost:3000"
	c.ShutdownTimeout = 5 * time.Second
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, then overlays the JSON file named
// by -c/-config, the environment and finally the flags found in args
// (usually os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	return cfg, nil
}
