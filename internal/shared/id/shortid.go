// Package id generates numeric protocol codes and url-safe access tokens.
// Everything draws from crypto/rand.
package id

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
)

const (
	digits = "0123456789"

	// TokenBytes yields 32 base64url characters (192 bits).
	TokenBytes = 24
)

// GenerateDigits returns a random string of n decimal digits. Leading zeros are kept.
func GenerateDigits(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("invalid digit count: %d", n)
	}
	return randomString(digits, n)
}

// GenerateToken returns byteLen random bytes encoded as unpadded base64url.
func GenerateToken(byteLen int) (string, error) {
	if byteLen <= 0 {
		byteLen = TokenBytes
	}
	buf := make([]byte, byteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func randomString(set string, length int) (string, error) {
	result := make([]byte, length)
	setLen := big.NewInt(int64(len(set)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, setLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = set[num.Int64()]
	}

	return string(result), nil
}
