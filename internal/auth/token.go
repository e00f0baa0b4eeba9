package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateResetToken creates a random 64-character hex token for the
// password-reset flow.
func GenerateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
