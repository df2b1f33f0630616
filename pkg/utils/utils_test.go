package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("budget123")
	require.NoError(t, err)
	assert.NotEqual(t, "budget123", hash)
	assert.True(t, CheckPasswordHash("budget123", hash))
	assert.False(t, CheckPasswordHash("budget124", hash))
	assert.False(t, CheckPasswordHash("budget123", "not-a-hash"))
}

func TestHashPasswordTooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("x", 73))
	require.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}

func TestIsEmail(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want bool
	}{
		{"priya@example.com", true},
		{"ravi.k@mail.example.co.in", true},
		{"Priya <priya@example.com>", false},
		{"priya", false},
		{"@example.com", false},
		{"priya@.com", false},
		{"", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, IsEmail(tc.in), tc.in)
	}
}
