package config

import "time"

// DefaultRelayEndpoint is the formsubmit.co AJAX endpoint for the site owner's inbox.
const DefaultRelayEndpoint = "https://formsubmit.co/ajax/daradekaran123@gmail.com"

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".portfolio.yml"

// DefaultAllowedOrigins are the CORS origins accepted outside allow_all mode.
var DefaultAllowedOrigins = []string{
	"http://localhost:*",
	"http://127.0.0.1:*",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: DefaultAllowedOrigins,
		},
		Relay: RelayConfig{
			Endpoint: DefaultRelayEndpoint,
		},
		Session: SessionConfig{
			IdleTTL:         30 * time.Minute,
			CleanupInterval: time.Minute,
		},
		Site: SiteConfig{
			OutputDir: "dist",
		},
		Log: LogConfig{
			Level: LogInfo,
		},
	}
}
