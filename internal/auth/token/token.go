package token

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCredential covers every verification failure: missing token,
// malformed token, expired token, or a signature made with another secret.
// Callers must not distinguish between them.
var ErrInvalidCredential = errors.New("invalid credential")

// Service signs and verifies the cookie-carried credential. It is stateless:
// a token is a pure function of the payload, the secret and the clock.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue embeds payload verbatim as claims and adds an expiry ttl from now.
func (s *Service) Issue(payload map[string]any) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["exp"] = jwt.NewNumericDate(s.now().Add(s.ttl))
	claims["iat"] = jwt.NewNumericDate(s.now())

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the original payload with
// the registered timestamp claims stripped back out.
func (s *Service) Verify(tokenStr string) (map[string]any, error) {
	if tokenStr == "" {
		return nil, ErrInvalidCredential
	}

	parsed, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidCredential
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidCredential
	}

	payload := map[string]any{}
	for k, v := range claims {
		if k == "exp" || k == "iat" {
			continue
		}
		payload[k] = v
	}
	return payload, nil
}
