package config

import "time"

// LogLevel controls the minimum zap level written by the binary.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Config is the top-level portfolio configuration, corresponding to .portfolio.yml.
type Config struct {
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Relay   RelayConfig   `yaml:"relay" koanf:"relay"`
	Session SessionConfig `yaml:"session" koanf:"session"`
	Content ContentConfig `yaml:"content" koanf:"content"`
	Site    SiteConfig    `yaml:"site" koanf:"site"`
	Log     LogConfig     `yaml:"log" koanf:"log"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port           int      `yaml:"port" koanf:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
	AllowAll       bool     `yaml:"allow_all" koanf:"allow_all"`
}

// RelayConfig describes the third-party mail relay the contact form posts to.
// A zero Timeout leaves the transport's own limits in charge.
type RelayConfig struct {
	Endpoint string        `yaml:"endpoint" koanf:"endpoint"`
	Timeout  time.Duration `yaml:"timeout" koanf:"timeout"`
}

// SessionConfig controls how long per-visitor form state is kept in memory.
type SessionConfig struct {
	IdleTTL         time.Duration `yaml:"idle_ttl" koanf:"idle_ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" koanf:"cleanup_interval"`
}

// ContentConfig points at an optional YAML file replacing the built-in profile.
type ContentConfig struct {
	File string `yaml:"file" koanf:"file"`
}

// SiteConfig holds static export settings.
type SiteConfig struct {
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level       LogLevel `yaml:"level" koanf:"level"`
	Development bool     `yaml:"development" koanf:"development"`
}
