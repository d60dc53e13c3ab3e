package ticket

import (
	"github.com/niggl1/appsindico/internal/shared/id"
)

// ProtocolDigits is the length of the human-facing protocol number.
const ProtocolDigits = 6

// ProtocolGenerator produces candidate protocol numbers. Uniqueness per
// tenant is checked by the caller.
type ProtocolGenerator interface {
	Generate() (string, error)
}

// TokenGenerator produces opaque access tokens for share and chat links.
type TokenGenerator interface {
	Generate() (string, error)
}

type randomProtocolGenerator struct{}

// NewRandomProtocolGenerator returns a generator of crypto-random 6-digit protocols.
func NewRandomProtocolGenerator() ProtocolGenerator {
	return randomProtocolGenerator{}
}

func (randomProtocolGenerator) Generate() (string, error) {
	return id.GenerateDigits(ProtocolDigits)
}

type randomTokenGenerator struct{}

// NewRandomTokenGenerator returns a generator of 32-character url-safe tokens.
func NewRandomTokenGenerator() TokenGenerator {
	return randomTokenGenerator{}
}

func (randomTokenGenerator) Generate() (string, error) {
	return id.GenerateToken(id.TokenBytes)
}
