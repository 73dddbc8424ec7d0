// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config maps environment variables onto [Config] with caarlos0/env.

Load is called once in cmd/api and the result is passed down through
constructors; nothing else reads the environment.
*/
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Environment names accepted in ENVIRONMENT.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

type Config struct {
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	DatabaseURL   string `env:"DATABASE_URL,required"`
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// RedisURL points at the store holding the generated sitemap.
	RedisURL string `env:"REDIS_URL,required"`

	// APISecret is the bearer value admin endpoints accept.
	APISecret string `env:"API_SECRET,required,notEmpty"`

	// AdminPasswordHash is a bcrypt hash. Empty disables dashboard sign-in.
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// SessionSecret signs dashboard session tokens (HS256).
	SessionSecret string `env:"SESSION_SECRET,required,notEmpty"`

	// SiteBaseURL prefixes every sitemap <loc>.
	SiteBaseURL string `env:"SITE_BASE_URL" envDefault:"http://localhost:3000"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	Storage Storage `envPrefix:"S3_"`
}

// Storage is the S3-compatible bucket (Cloudflare R2 in production) that
// receives media uploads.
type Storage struct {
	Bucket          string `env:"BUCKET"`
	Region          string `env:"REGION"            envDefault:"auto"`
	Endpoint        string `env:"ENDPOINT"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	PublicBaseURL   string `env:"PUBLIC_BASE_URL"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}

	if !slices.Contains([]string{EnvDevelopment, EnvStaging, EnvProduction}, cfg.Environment) {
		return nil, fmt.Errorf("config: unknown ENVIRONMENT %q", cfg.Environment)
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// Origins returns AllowedOrigins without blank entries.
func (c *Config) Origins() []string {
	origins := make([]string, 0, len(c.AllowedOrigins))
	for _, origin := range c.AllowedOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// UploadsEnabled reports whether the media upload routes can be mounted.
func (c *Config) UploadsEnabled() bool {
	return c.Storage.Bucket != "" && c.Storage.Endpoint != "" && c.Storage.PublicBaseURL != ""
}
