package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is used when the configured TTL is zero.
const DefaultTokenTTL = 30 * time.Minute

const minSecretBytes = 32

// Validation failures, kept distinct internally. Handlers collapse all
// of them into one generic 401 so clients cannot tell which check failed.
var (
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenMalformed        = errors.New("token malformed")
)

// TokenService issues and validates signed bearer tokens. Tokens are
// self-contained: subject username plus issued-at and expiry claims,
// HMAC-signed with a process-wide secret. Nothing is persisted, so
// there is no revocation short of waiting out the TTL.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService returns a token service signing with secret. The
// secret must be at least 32 bytes.
func NewTokenService(secret []byte, ttl time.Duration) (*TokenService, error) {
	if len(secret) < minSecretBytes {
		return nil, fmt.Errorf("signing secret must be at least %d bytes, got %d", minSecretBytes, len(secret))
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: secret, ttl: ttl, now: time.Now}, nil
}

// NewSecret generates a fresh random signing secret. Generating it per
// process start means a restart invalidates every outstanding token;
// set AUTH_SECRET if that is undesired.
func NewSecret() ([]byte, error) {
	b := make([]byte, minSecretBytes)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("rand: %w", err)
	}
	return b, nil
}

// ParseSecret decodes a hex-encoded signing secret from config.
func ParseSecret(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("AUTH_SECRET must be hex-encoded: %w", err)
	}
	if len(b) < minSecretBytes {
		return nil, fmt.Errorf("AUTH_SECRET must decode to at least %d bytes, got %d", minSecretBytes, len(b))
	}
	return b, nil
}

// Issue creates a signed token for username, valid for the configured TTL.
func (s *TokenService) Issue(username string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate checks signature and expiry and returns the subject username.
// Failures map to ErrTokenExpired, ErrTokenSignatureInvalid or
// ErrTokenMalformed.
func (s *TokenService) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrTokenSignatureInvalid
		default:
			return "", ErrTokenMalformed
		}
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrTokenMalformed
	}
	return claims.Subject, nil
}
