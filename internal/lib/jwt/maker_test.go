package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	aliceKey = "0b1f6a3c9d2e4f5a6b7c8d9e0f1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d7e8f90"
	bobKey   = "f0e9d8c7b6a5f4e3d2c1b0a9f8e7d6c5b4a3f2e1d0c9b8a7f6e5d4c3b2a1f0e9"
)

func TestIssueAndParse_ValidCases(t *testing.T) {
	tests := []struct {
		name     string
		username string
		ttl      time.Duration
		wantTTL  time.Duration
	}{
		{name: "login ttl", username: "alice", ttl: 30 * time.Minute, wantTTL: 30 * time.Minute},
		{name: "zero ttl falls back to default", username: "alice", ttl: 0, wantTTL: DefaultTTL},
		{name: "email-like username", username: "user@domain.com", ttl: time.Hour, wantTTL: time.Hour},
		{name: "short ttl", username: "bob", ttl: time.Minute, wantTTL: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := Issue(tt.username, aliceKey, tt.ttl)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := Parse(token, aliceKey)
			require.NoError(t, err)
			assert.Equal(t, tt.username, claims.Username())
			assert.WithinDuration(t, time.Now().Add(tt.wantTTL), claims.ExpiresAt.Time, 2*time.Second)
		})
	}
}

func TestParse_InvalidTokens(t *testing.T) {
	valid, err := Issue("alice", aliceKey, time.Minute)
	require.NoError(t, err)
	expired, err := Issue("alice", aliceKey, -time.Hour)
	require.NoError(t, err)
	otherKey, err := Issue("alice", bobKey, time.Minute)
	require.NoError(t, err)

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "alice"})
	noExpToken, err := noExp.SignedString([]byte(aliceKey))
	require.NoError(t, err)

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	hs512Token, err := hs512.SignedString([]byte(aliceKey))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "malformed token", token: "invalid.token.here"},
		{name: "expired token", token: expired},
		{name: "signed with another key", token: otherKey},
		{name: "tampered token", token: valid + "tampered"},
		{name: "missing exp", token: noExpToken},
		{name: "unexpected algorithm", token: hs512Token},
		{name: "unsigned token", token: unsignedToken(t, "alice")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := Parse(tt.token, aliceKey)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestParse_ExpiredMessage(t *testing.T) {
	token, err := Issue("alice", aliceKey, -time.Minute)
	require.NoError(t, err)

	_, err = Parse(token, aliceKey)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestUnverifiedSubject(t *testing.T) {
	expired, err := Issue("alice", aliceKey, -time.Hour)
	require.NoError(t, err)
	foreign, err := Issue("bob", "not-bobs-key", time.Minute)
	require.NoError(t, err)

	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	noSubToken, err := noSub.SignedString([]byte(aliceKey))
	require.NoError(t, err)

	numericSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": 42})
	numericSubToken, err := numericSub.SignedString([]byte(aliceKey))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		want    string
		wantErr bool
	}{
		{name: "expired token still yields subject", token: expired, want: "alice"},
		{name: "signature is not checked", token: foreign, want: "bob"},
		{name: "missing subject", token: noSubToken, wantErr: true},
		{name: "non-string subject", token: numericSubToken, wantErr: true},
		{name: "garbage", token: "garbage", wantErr: true},
		{name: "empty", token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnverifiedSubject(tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnverifiedSubject_MissingSubjectError(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	s, err := token.SignedString([]byte(aliceKey))
	require.NoError(t, err)

	_, err = UnverifiedSubject(s)
	assert.ErrorIs(t, err, ErrNoSubject)
}

func TestToken_Expiration(t *testing.T) {
	token, err := Issue("alice", aliceKey, 1100*time.Millisecond)
	require.NoError(t, err)

	_, err = Parse(token, aliceKey)
	require.NoError(t, err)

	time.Sleep(2100 * time.Millisecond)

	_, err = Parse(token, aliceKey)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func unsignedToken(t *testing.T, username string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	s, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return s
}
