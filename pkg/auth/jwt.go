package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/nmchat/nmbot/config"
)

const JwtAlg = "HS256"

var ErrMissingSecret = errors.New(
	"auth secret not set. Ensure NMBOT_AUTH_SECRET is set in your environment",
)

// GenerateJWT generates a JWT token using the given config.
// Requires that NMBOT_AUTH_SECRET is set in the environment.
func GenerateJWT(cfg *config.Config) (string, error) {
	tokenAuth, err := newTokenAuth(cfg)
	if err != nil {
		return "", err
	}
	_, tokenString, err := tokenAuth.Encode(nil)
	if err != nil {
		return "", fmt.Errorf("error generating auth token: %w", err)
	}
	return tokenString, nil
}

func JWTVerifier(cfg *config.Config) (func(http.Handler) http.Handler, error) {
	tokenAuth, err := newTokenAuth(cfg)
	if err != nil {
		return nil, err
	}
	return jwtauth.Verifier(tokenAuth), nil
}

func newTokenAuth(cfg *config.Config) (*jwtauth.JWTAuth, error) {
	secret := []byte(cfg.Auth.Secret)
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}
	return jwtauth.New(JwtAlg, secret, nil), nil
}
