package jwtverifier

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"maternal-care-api/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotConfigured = errors.New("jwt verifier not configured")
	ErrTokenEmpty    = errors.New("token is empty")
	ErrMissingSub    = errors.New("token missing sub")
)

type Config struct {
	Secret string
	Issuer string // opcional

	// Tolerancia de reloj para exp/nbf.
	Leeway time.Duration
}

// tokenClaims: sub es el user id; email/role son opcionales.
type tokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Verifier implementa auth.AuthVerifier con JWT HS256.
type Verifier struct {
	secret []byte
	opts   []jwt.ParserOption
}

func New(cfg Config) *Verifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if iss := strings.TrimSpace(cfg.Issuer); iss != "" {
		opts = append(opts, jwt.WithIssuer(iss))
	}
	if cfg.Leeway > 0 {
		opts = append(opts, jwt.WithLeeway(cfg.Leeway))
	}
	return &Verifier{
		secret: []byte(cfg.Secret),
		opts:   opts,
	}
}

func (v *Verifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if v == nil || len(v.secret) == 0 {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, v.opts...)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("jwt verify failed: %w", err)
	}

	sub := strings.TrimSpace(claims.Subject)
	if sub == "" {
		return auth.Claims{}, ErrMissingSub
	}

	return auth.Claims{
		UserID: sub,
		Email:  strings.TrimSpace(claims.Email),
		Role:   strings.TrimSpace(claims.Role),
	}, nil
}

// Sign emite un token para userID. Lo usan tests y el CLI en modo dev.
func (v *Verifier) Sign(claims auth.Claims, issuer string, ttl time.Duration) (string, error) {
	if v == nil || len(v.secret) == 0 {
		return "", ErrNotConfigured
	}
	now := time.Now()
	tc := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: claims.Email,
		Role:  claims.Role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, tc).SignedString(v.secret)
}
