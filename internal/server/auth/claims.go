// Package auth issues and verifies the HS256 bearer tokens that carry a
// caller's identity. Verification is self-contained: the token is the only
// source of truth for who the caller is until it expires.
package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity asserted by a verified token.
type Claims struct {
	SubjectID   uint64 `json:"id"`
	DisplayName string `json:"name"`
	ExpiresAt   int64  `json:"exp"`
}

// tokenClaims is the wire form of Claims. The custom fields keep the names
// used by previously issued tokens; exp comes from the registered claims so
// the parser enforces it.
type tokenClaims struct {
	SubjectID   uint64 `json:"id"`
	DisplayName string `json:"name"`
	jwt.RegisteredClaims
}

func (c Claims) toToken() tokenClaims {
	return tokenClaims{
		SubjectID:   c.SubjectID,
		DisplayName: c.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(unix(c.ExpiresAt)),
		},
	}
}

func (t tokenClaims) claims() Claims {
	c := Claims{SubjectID: t.SubjectID, DisplayName: t.DisplayName}
	if t.ExpiresAt != nil {
		c.ExpiresAt = t.ExpiresAt.Unix()
	}
	return c
}

type ctxKey struct{}

// WithClaims returns a copy of ctx carrying the verified claims.
func WithClaims(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// ClaimsFromContext returns the claims stored by WithClaims.
func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(ctxKey{}).(Claims)
	return c, ok
}
