package resettokengenerator

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"studiobooking/internal/core/domain/user"
)

// TOKEN_BYTE_COUNT gives tokens 256 bits of entropy.
const TOKEN_BYTE_COUNT = 32

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateResetToken() user.ResetToken {
	b := make([]byte, TOKEN_BYTE_COUNT)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("could not read random bytes: %v", err))
	}
	return user.ResetToken(hex.EncodeToString(b))
}
