package resettokengenerator

import (
	"studiobooking/internal/core/domain/user"
	"testing"
)

func TestResetTokenGenerator(t *testing.T) {
	generator := NewGenerator()
	tokens := make(map[user.ResetToken]struct{})
	for i := 0; i < 100; i++ {
		token := generator.GenerateResetToken()
		if len(token) != TOKEN_BYTE_COUNT*2 {
			t.Fatalf("unexpected token length: %d", len(token))
		}
		if _, ok := tokens[token]; ok {
			t.Fatalf("token %v already exists", token)
		}
		tokens[token] = struct{}{}
	}
}
