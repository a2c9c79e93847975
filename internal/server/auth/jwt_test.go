package auth

import (
	"context"
	"encoding/base64"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newPair(t *testing.T, secret string, now time.Time) (*Signer, *Verifier) {
	t.Helper()
	s, err := NewSigner([]byte(secret))
	require.NoError(t, err)
	v, err := NewVerifier([]byte(secret))
	require.NoError(t, err)
	s.now = fixedClock(now)
	v.now = fixedClock(now)
	return s, v
}

func TestSignVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	exp := now.Add(14 * 24 * time.Hour).Unix()
	s, v := newPair(t, "deabeef", now)

	want := Claims{SubjectID: 1, DisplayName: "Team Meng", ExpiresAt: exp}
	tok, err := s.Sign(want)
	require.NoError(t, err)

	got, err := v.Verify("Bearer " + tok)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestIssue_SetsExpiry(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	s, v := newPair(t, "k", now)

	tok, c, err := s.Issue(42, "alice", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour).Unix(), c.ExpiresAt)

	got, err := v.VerifyToken(tok)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	issued := time.Unix(1_700_000_000, 0)
	exp := issued.Add(time.Minute)
	s, v := newPair(t, "secret", issued)

	tok, err := s.Sign(Claims{SubjectID: 1, DisplayName: "u", ExpiresAt: exp.Unix()})
	require.NoError(t, err)

	tests := []struct {
		name string
		now  time.Time
	}{
		{name: "exactly at exp", now: exp},
		{name: "after exp", now: exp.Add(time.Second)},
		{name: "long after exp", now: exp.Add(365 * 24 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vv := *v
			vv.now = fixedClock(tt.now)
			_, err := vv.VerifyToken(tok)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	vv := *v
	vv.now = fixedClock(exp.Add(-time.Second))
	_, err = vv.VerifyToken(tok)
	assert.NoError(t, err, "token must still be valid one second before exp")
}

func TestVerify_ExpiredWithWrongSecretIsInvalid(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	s, _ := newPair(t, "right", now)
	_, v := newPair(t, "wrong", now.Add(time.Hour))

	tok, err := s.Sign(Claims{SubjectID: 1, ExpiresAt: now.Add(time.Minute).Unix()})
	require.NoError(t, err)

	_, err = v.VerifyToken(tok)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	s, _ := newPair(t, "right-secret", now)
	_, v := newPair(t, "wrong-secret", now)

	tok, err := s.Sign(Claims{SubjectID: 2, DisplayName: "bob", ExpiresAt: now.Add(time.Hour).Unix()})
	require.NoError(t, err)

	_, err = v.Verify("Bearer " + tok)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerify_Missing(t *testing.T) {
	t.Parallel()

	_, v := newPair(t, "k", time.Now())

	for _, header := range []string{"", "   ", "Bearer", "Bearer    ", "Basic dXNlcjpwYXNz", "Token abc.def.ghi"} {
		_, err := v.Verify(header)
		assert.ErrorIs(t, err, ErrMissing, "header %q", header)
	}

	_, err := v.VerifyToken("")
	assert.ErrorIs(t, err, ErrMissing)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	_, v := newPair(t, "k", time.Now())

	badPayload := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`)) + "." +
		base64.RawURLEncoding.EncodeToString([]byte(`{"id":"one","name":"x","exp":1}`)) + ".c2ln"

	for _, token := range []string{"not-a-jwt", "a.b", "not.a.jwt", "a.b.c.d", badPayload} {
		_, err := v.Verify("Bearer " + token)
		assert.ErrorIs(t, err, ErrMalformed, "token %q", token)
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	_, v := newPair(t, "k", now)
	c := Claims{SubjectID: 1, DisplayName: "x", ExpiresAt: now.Add(time.Hour).Unix()}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, c.toToken()).SignedString([]byte("k"))
	require.NoError(t, err)
	_, err = v.VerifyToken(hs512)
	assert.ErrorIs(t, err, ErrInvalid)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, c.toToken()).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = v.VerifyToken(none)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerify_RequiresExpiry(t *testing.T) {
	t.Parallel()

	_, v := newPair(t, "k", time.Now())

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": 1, "name": "x"}).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = v.VerifyToken(tok)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerify_PreviouslyIssuedToken(t *testing.T) {
	t.Parallel()

	const legacy = "eyJ0eXAiOiJKV1QiLCJhbGciOiJIUzI1NiJ9." +
		"eyJpZCI6MSwibmFtZSI6IlRlYW0gTWVuZyIsImV4cCI6MTcyOTQ4NjYxNH0." +
		"YibD09lLtHYiKaFeXmmaxhQP2J3YnyzKvP2R46N6kOo"

	_, v := newPair(t, "deabeef", time.Unix(1729486614-60, 0))
	got, err := v.VerifyToken(legacy)
	require.NoError(t, err)
	assert.Equal(t, Claims{SubjectID: 1, DisplayName: "Team Meng", ExpiresAt: 1729486614}, got)

	v.now = fixedClock(time.Unix(1729486614, 0))
	_, err = v.VerifyToken(legacy)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestErrors_AreUnauthorized(t *testing.T) {
	t.Parallel()

	for _, err := range []error{ErrMissing, ErrMalformed, ErrInvalid} {
		assert.ErrorIs(t, err, common.ErrorUnauthorized)
	}
	assert.NotErrorIs(t, ErrMissing, ErrInvalid)
	assert.NotErrorIs(t, ErrMalformed, ErrInvalid)
}

func TestNew_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := NewSigner(nil)
	assert.ErrorIs(t, err, ErrEmptySecret)
	_, err = NewVerifier([]byte{})
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestVerify_Concurrent(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	s, v := newPair(t, "shared", now)

	const n = 64
	tokens := make([]string, n)
	for i := range tokens {
		tok, err := s.Sign(Claims{SubjectID: uint64(i + 1), DisplayName: "u", ExpiresAt: now.Add(time.Hour).Unix()})
		require.NoError(t, err)
		tokens[i] = tok
	}

	var wg sync.WaitGroup
	errs := make([]error, n)
	got := make([]Claims, n)
	for i := range tokens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], errs[i] = v.Verify("Bearer " + tokens[i])
		}(i)
	}
	wg.Wait()

	for i := range tokens {
		require.NoError(t, errs[i])
		assert.Equal(t, uint64(i+1), got[i].SubjectID)
	}
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"BEARER   abc  ", "abc", true},
		{"Bearer", "", false},
		{"Basic abc", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		token, ok := BearerToken(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.token, token, tt.header)
	}
}

func TestClaimsContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, ok := ClaimsFromContext(ctx)
	assert.False(t, ok)

	c := Claims{SubjectID: 9, DisplayName: "n", ExpiresAt: 10}
	got, ok := ClaimsFromContext(WithClaims(ctx, c))
	assert.True(t, ok)
	assert.Equal(t, c, got)
}
