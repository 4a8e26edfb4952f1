package utils

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// GenerateResetToken returns an unguessable password-reset token.
func GenerateResetToken() string {
	return uuid.NewString()
}

// GenerateMFACode returns a 6-digit verification code.
func GenerateMFACode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}
