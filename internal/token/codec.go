// Package token creates and verifies the signed bearer tokens that carry a
// user's identity between requests. Tokens are self-contained: verification
// is a pure computation over the string and the shared signing secret, with
// no server-side record behind it.
package token

import (
	"errors"
	"time"

	"bookstore/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLen is the minimum accepted signing secret length in bytes.
const MinSecretLen = 32

var (
	// ErrWeakSecret indicates a missing or too-short signing secret. Fatal at startup.
	ErrWeakSecret = errors.New("signing secret must be at least 32 bytes")
	// ErrNoSubject indicates an Issue call without a subject.
	ErrNoSubject = errors.New("subject must not be empty")
	// ErrBadSignature indicates the signature does not match the payload.
	ErrBadSignature = errors.New("token signature mismatch")
	// ErrExpired indicates the token is past its expiry.
	ErrExpired = errors.New("token expired")
	// ErrMalformed indicates the string is not a parseable token.
	ErrMalformed = errors.New("token malformed")
)

// Claims is the verified identity carried by a token.
type Claims struct {
	Subject string
	Roles   []domain.Role
}

type tokenClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Codec issues and verifies HMAC-SHA512 signed tokens with a fixed lifetime.
// The secret is read-only after construction; a Codec is safe for concurrent use.
type Codec struct {
	secret   []byte
	lifetime time.Duration
}

// New creates a Codec. The secret must be at least MinSecretLen bytes.
func New(secret string, lifetime time.Duration) (*Codec, error) {
	if len(secret) < MinSecretLen {
		return nil, ErrWeakSecret
	}
	return &Codec{secret: []byte(secret), lifetime: lifetime}, nil
}

// Lifetime returns the configured token lifetime.
func (c *Codec) Lifetime() time.Duration {
	return c.lifetime
}

// Issue signs a token for subject carrying the given roles, issued at now and
// expiring at now plus the configured lifetime. Identical inputs produce
// byte-identical tokens.
func (c *Codec) Issue(subject string, roles []domain.Role, now time.Time) (string, error) {
	if subject == "" {
		return "", ErrNoSubject
	}
	claims := &tokenClaims{
		Roles: domain.RolesToStrings(roles),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.lifetime)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(c.secret)
}

// Verify checks the signature and expiry of tokenString as of now and returns
// the embedded identity. Any tampering with payload or signature surfaces as
// ErrBadSignature; expiry as ErrExpired; anything unparseable as ErrMalformed.
func (c *Codec) Verify(tokenString string, now time.Time) (Claims, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		default:
			// Signature mismatch, wrong algorithm, wrong key: all tampering.
			return Claims{}, ErrBadSignature
		}
	}
	return Claims{Subject: claims.Subject, Roles: domain.RolesFromStrings(claims.Roles)}, nil
}
