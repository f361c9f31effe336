package utils

import (
	"log"
	"os"
	"time"
)

var (
	// JWTSecretKey signs every session token. Loaded once at startup,
	// never mutated afterwards.
	JWTSecretKey string

	// JWTExpirationTime is the session token TTL.
	JWTExpirationTime time.Duration
)

func InitJWT() {
	// Tests run without a .env file; fall back to a fixed secret there
	if os.Getenv("GO_ENV") == "test" && os.Getenv("JWT_SECRET_KEY") == "" {
		os.Setenv("JWT_SECRET_KEY", "test_secret_key")
	}

	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" {
		log.Fatal("JWT Secret Key not set")
	}

	JWTExpirationTime = GetEnvAsDuration("JWT_EXPIRATION_TIME", 3600*time.Second)
}
