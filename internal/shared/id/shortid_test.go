package id

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDigits(t *testing.T) {
	for i := 0; i < 50; i++ {
		got, err := GenerateDigits(6)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^[0-9]{6}$`), got)
	}

	_, err := GenerateDigits(0)
	assert.Error(t, err)
}

func TestGenerateToken(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		tok, err := GenerateToken(TokenBytes)
		require.NoError(t, err)
		assert.Len(t, tok, 32)
		assert.Regexp(t, regexp.MustCompile(`^[A-Za-z0-9_-]+$`), tok)

		_, dup := seen[tok]
		assert.False(t, dup, "token collision")
		seen[tok] = struct{}{}
	}
}
