package auth

import (
	"fmt"
	"time"

	"equipment-management-backend/internal/config"
)

// Default token settings
const (
	DefaultIssuer   = "equipment-management-backend"
	DefaultTokenTTL = time.Hour
)

// AuthConfig holds the JWT settings used to identify the acting user
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret"`
	Issuer    string        `yaml:"issuer" json:"issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl"`
}

// NewAuthConfig builds the auth configuration from the application configuration
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret: cfg.JWTSecret,
		Issuer:    DefaultIssuer,
		TokenTTL:  DefaultTokenTTL,
	}
}

// ValidateConfig validates the auth configuration and fills in defaults
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.Issuer == "" {
		c.Issuer = DefaultIssuer
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = DefaultTokenTTL
	}
	return nil
}
