package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

func unix(sec int64) time.Time {
	return time.Unix(sec, 0)
}

// Signer mints access tokens. It is safe for concurrent use.
type Signer struct {
	secret []byte
	now    func() time.Time
}

// NewSigner returns a Signer using the shared HMAC secret.
func NewSigner(secret []byte) (*Signer, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return &Signer{secret: secret, now: time.Now}, nil
}

// Sign encodes c as an HS256 token.
func (s *Signer) Sign(c Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c.toToken())

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return tokenString, nil
}

// Issue signs claims for the subject that expire validity from now.
func (s *Signer) Issue(subjectID uint64, displayName string, validity time.Duration) (string, Claims, error) {
	c := Claims{
		SubjectID:   subjectID,
		DisplayName: displayName,
		ExpiresAt:   s.now().Add(validity).Unix(),
	}
	token, err := s.Sign(c)
	if err != nil {
		return "", Claims{}, err
	}
	return token, c, nil
}

// Verifier checks bearer credentials. It holds no mutable state besides the
// read-only secret and may be shared by any number of goroutines.
type Verifier struct {
	secret []byte
	now    func() time.Time
}

// NewVerifier returns a Verifier for tokens signed with secret.
func NewVerifier(secret []byte) (*Verifier, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return &Verifier{secret: secret, now: time.Now}, nil
}

// Verify extracts the bearer token from the raw Authorization header value
// and verifies it. An empty header, a non-Bearer scheme or an empty token
// yields ErrMissing.
func (v *Verifier) Verify(rawHeader string) (Claims, error) {
	token, ok := BearerToken(rawHeader)
	if !ok {
		return Claims{}, ErrMissing
	}
	return v.VerifyToken(token)
}

// VerifyToken verifies a bare token string.
//
// ErrMalformed is returned when the token cannot be decoded as a three-part
// JWT with the expected payload. ErrInvalid is returned for a bad signature,
// an unexpected algorithm, a missing exp, or when now >= exp.
func (v *Verifier) VerifyToken(tokenString string) (Claims, error) {
	if tokenString == "" {
		return Claims{}, ErrMissing
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)

	tc := &tokenClaims{}
	token, err := parser.ParseWithClaims(tokenString, tc, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if !token.Valid {
		return Claims{}, ErrInvalid
	}

	return tc.claims(), nil
}

// BearerToken returns the token part of an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
