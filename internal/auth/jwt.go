package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is what the admin session cookie carries: a local session id and the
// backend's bearer token, signed so the browser cannot edit either.
type SessionClaims struct {
	SessionID string `json:"sid"`
	Token     string `json:"tok"`
	jwt.RegisteredClaims
}

// Signer signs and validates session cookie values with HS256.
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSigner returns a Signer. A zero ttl produces values without an expiry claim.
func NewSigner(secret string, ttl time.Duration) *Signer {
	return &Signer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Sign creates the cookie value for a session.
func (s *Signer) Sign(sessionID, token string) (string, error) {
	now := s.now()
	claims := SessionClaims{
		SessionID: sessionID,
		Token:     token,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  sessionID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse validates a cookie value and returns its claims.
func (s *Signer) Parse(value string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.SessionID == "" || claims.Token == "" {
		return nil, errors.New("invalid session cookie")
	}
	return claims, nil
}
