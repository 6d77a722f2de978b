package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string   `mapstructure:"PORT"`
	Env           string   `mapstructure:"ENV"`
	DatabaseURL   string   `mapstructure:"DATABASE_URL"`
	AdminUser     string   `mapstructure:"ADMIN_USER"`
	AdminPassword string   `mapstructure:"ADMIN_PASSWORD"`
	CORSOrigins   []string `mapstructure:"CORS_ORIGINS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults. Admin credentials fall back to admin/admin for local
	// development; Validate refuses them in production.
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("ADMIN_USER", "admin")
	v.SetDefault("ADMIN_PASSWORD", "admin")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("ADMIN_USER")
	v.BindEnv("ADMIN_PASSWORD")
	v.BindEnv("CORS_ORIGINS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate checks that the configuration is safe to run. Administrator
// credentials are compared as plain strings at login, so in production the
// shipped admin/admin defaults must not be left in place.
func (c *Config) Validate() error {
	if c.AdminUser == "" || c.AdminPassword == "" {
		return fmt.Errorf("ADMIN_USER and ADMIN_PASSWORD must not be empty")
	}
	if c.IsProduction() && c.AdminUser == "admin" && c.AdminPassword == "admin" {
		return fmt.Errorf("refusing to start in production with default admin credentials; set ADMIN_USER and ADMIN_PASSWORD")
	}
	return nil
}
