package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Auth struct {
		JWTSecret       string `yaml:"jwt_secret"`
		TokenTTLSeconds int64  `yaml:"token_ttl_seconds"`
	} `yaml:"auth"`
	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"smtp"`
	App struct {
		// BaseURL is the externally reachable address embedded in
		// verification links.
		BaseURL string `yaml:"base_url"`
	} `yaml:"app"`
}

// TokenTTL returns the session token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Auth.TokenTTLSeconds) * time.Second
}

// LoadConfig reads configuration from the specified YAML file. Environment
// variables override the file for values that should not live in it
// (secrets, deploy-specific addresses).
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	config.applyEnvOverrides()

	if config.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required (set auth.jwt_secret or JWT_SECRET)")
	}
	if config.Auth.TokenTTLSeconds <= 0 {
		config.Auth.TokenTTLSeconds = 3600
	}
	if config.Server.Port == "" {
		config.Server.Port = "5000"
	}

	return config, nil
}

func (c *Config) applyEnvOverrides() {
	if v := envValue("SERVER_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := envValue("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := envValue("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := envValue("SMTP_PASSWORD"); v != "" {
		c.SMTP.Password = v
	}
	if v := envValue("APP_BASE_URL"); v != "" {
		c.App.BaseURL = v
	}
}

func envValue(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
