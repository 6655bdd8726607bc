// Package auth issues and validates the HS256 bearer tokens used by the HTTP
// surface, and exposes the authenticated principal to handlers.
package auth

import (
	"errors"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Principal represents the authenticated caller extracted from a token.
type Principal struct {
	UserID   int64
	Username string
	IsAdmin  bool
}

type claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// Issuer signs tokens for logged-in users.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an Issuer with the given signing secret and token lifetime.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token for the principal.
func (i *Issuer) Issue(p Principal) (string, error) {
	if len(i.secret) == 0 {
		return "", errors.New("jwt secret is empty")
	}
	now := time.Now().UTC()
	c := claims{
		Username: p.Username,
		IsAdmin:  p.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(p.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.secret)
}

// Parse validates a token string and extracts the Principal.
func Parse(tokenStr, secret string) (*Principal, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	tok, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !tok.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return nil, err
	}
	c, _ := tok.Claims.(*claims)
	if c == nil || c.Subject == "" || c.Username == "" {
		return nil, errors.New("invalid claims")
	}
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return nil, errors.New("invalid subject")
	}
	return &Principal{UserID: id, Username: c.Username, IsAdmin: c.IsAdmin}, nil
}
