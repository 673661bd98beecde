// Package token issues and verifies the signed credentials used by the API:
// short-lived access tokens and long-lived refresh tokens, discriminated by
// a token_type claim. Validity is purely a function of signature and expiry;
// there is no server-side revocation store.
package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"spendwise/internal/models"
)

// Kind discriminates access tokens from refresh tokens.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Claims is the payload carried inside every issued token.
type Claims struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Issuer creates and validates signed tokens under a single shared secret.
// It is constructed once at startup and passed to the components that need it.
type Issuer struct {
	secret     []byte
	method     jwt.SigningMethod
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewIssuer builds an Issuer for the given HMAC algorithm name (HS256, HS384
// or HS512). Non-HMAC algorithms are rejected so a misconfigured environment
// fails at startup rather than at the first login.
func NewIssuer(secret, algorithm string, accessTTL, refreshTTL time.Duration) (*Issuer, error) {
	var method jwt.SigningMethod
	switch algorithm {
	case "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	return &Issuer{
		secret:     []byte(secret),
		method:     method,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// AccessTTL returns the access token lifetime, used for the expires_in field
// of token responses.
func (i *Issuer) AccessTTL() time.Duration {
	return i.accessTTL
}

// Issue creates a signed token of the given kind for a user. The subject is
// the string form of the user ID, per the JWT spec.
func (i *Issuer) Issue(user *models.User, kind Kind) (string, error) {
	ttl := i.accessTTL
	if kind == KindRefresh {
		ttl = i.refreshTTL
	}

	now := time.Now()
	claims := &Claims{
		UserID:    user.ID,
		Email:     user.Email,
		TokenType: string(kind),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "spendwise-api",
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
		},
	}

	return jwt.NewWithClaims(i.method, claims).SignedString(i.secret)
}

// Verify parses a token and checks its signature and expiry. It returns the
// decoded claims, or an error for a malformed token, a signature mismatch,
// or an expired token. Callers branch on the result; no distinction is made
// between the failure causes.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// SubjectID extracts the numeric user ID from the claims' subject.
func (c *Claims) SubjectID() (uint, error) {
	if c.Subject == "" {
		return 0, fmt.Errorf("token has no subject")
	}
	id, err := strconv.ParseUint(c.Subject, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("non-numeric token subject %q", c.Subject)
	}
	return uint(id), nil
}
