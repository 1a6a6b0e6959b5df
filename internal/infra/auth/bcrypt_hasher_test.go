package auth

import (
	"strings"
	"testing"

	"challengehub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "pw"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Salted: the same input never hashes to the same value twice.
	again, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEqual(t, hash, again)

	assert.True(t, hasher.Check(password, hash))
	assert.True(t, hasher.Check(password, again))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "nil config", cfg: nil, want: DefaultCost},
		{name: "no auth section", cfg: &config.Config{}, want: DefaultCost},
		{name: "configured", cfg: &config.Config{Auth: &config.AuthConfig{BcryptCost: 6}}, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(tt.cfg)

			hash, err := hasher.Hash("pw")
			require.NoError(t, err)

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cost)
		})
	}
}

func TestBcryptHasher_TooLongPassword(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
}
