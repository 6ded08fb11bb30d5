package password

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGetHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "regular password", password: "password123"},
		{name: "password with special chars", password: "p@ssw0rd!@#$%^&*()"},
		{name: "short password", password: "pw123"},
		{name: "unicode password", password: "пароль-секрет"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotHash, err := GetHash(tt.password)
			require.NoError(t, err)
			assert.NotEmpty(t, gotHash)
			assert.NotEqual(t, tt.password, gotHash)
			assert.True(t, strings.HasPrefix(gotHash, "$2"), "expected bcrypt hash, got %q", gotHash)

			assert.NoError(t, CompareHash(gotHash, tt.password))
		})
	}
}

func TestGetHash_TooLong(t *testing.T) {
	_, err := GetHash(strings.Repeat("a", 73))
	require.Error(t, err)
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
	assert.ErrorIs(t, err, ErrTooLong)

	_, err = GetHash(strings.Repeat("a", MaxBytes))
	require.NoError(t, err)

	// ограничение в байтах, а не в символах
	_, err = GetHash(strings.Repeat("ж", 37))
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestCompareDummy_CostsAsMuchAsRealCompare(t *testing.T) {
	hash, err := GetHash("correct_password")
	require.NoError(t, err)
	CompareDummy("warmup")

	start := time.Now()
	require.Error(t, CompareHash(hash, "wrong_password"))
	realCost := time.Since(start)

	start = time.Now()
	CompareDummy("wrong_password")
	dummyCost := time.Since(start)

	assert.Greater(t, dummyCost, realCost/4)
}

func TestCompareHash(t *testing.T) {
	correctHash, err := GetHash("correct_password")
	require.NoError(t, err)

	anotherHash, err := GetHash("another_password")
	require.NoError(t, err)

	tests := []struct {
		name        string
		hash        string
		password    string
		shouldMatch bool
	}{
		{name: "matching password", hash: correctHash, password: "correct_password", shouldMatch: true},
		{name: "wrong password", hash: correctHash, password: "wrong_password"},
		{name: "different hash same password", hash: anotherHash, password: "correct_password"},
		{name: "empty password", hash: correctHash, password: ""},
		{name: "hash is not bcrypt", hash: "plain-text", password: "plain-text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CompareHash(tt.hash, tt.password)
			if tt.shouldMatch {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestGetHash_SamePasswordDifferentSalt(t *testing.T) {
	hash1, err := GetHash("password1")
	require.NoError(t, err)
	hash2, err := GetHash("password1")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
	assert.NoError(t, CompareHash(hash1, "password1"))
	assert.NoError(t, CompareHash(hash2, "password1"))
}
