package config

import (
	"log"
	"os"
	"sync"
	"time"
)

type AuthConfig struct {
	JWTSecret   string
	TokenExpiry time.Duration
	CookieName  string
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			secret = "your-secret-key"
			log.Println("Warning: JWT_SECRET not set, using insecure default")
		}
		expiry := 7 * 24 * time.Hour
		if raw := os.Getenv("JWT_EXPIRY"); raw != "" {
			if parsed, err := time.ParseDuration(raw); err == nil {
				expiry = parsed
			}
		}
		cookieName := os.Getenv("AUTH_COOKIE_NAME")
		if cookieName == "" {
			cookieName = "token"
		}
		authConfig = &AuthConfig{
			JWTSecret:   secret,
			TokenExpiry: expiry,
			CookieName:  cookieName,
		}
	})
	return authConfig
}
