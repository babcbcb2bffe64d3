package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	inviteCodeLength   = 10
	inviteCodeAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// NewInviteCode returns a random group invite code.
// Uses cryptographically secure random selection.
func NewInviteCode() (string, error) {
	code := make([]byte, inviteCodeLength)
	for i := range code {
		idx, err := secureRandInt(len(inviteCodeAlphabet))
		if err != nil {
			return "", fmt.Errorf("failed to generate invite code: %w", err)
		}
		code[i] = inviteCodeAlphabet[idx]
	}
	return string(code), nil
}

// secureRandInt returns a cryptographically secure random integer in [0, max).
func secureRandInt(max int) (int, error) {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(nBig.Int64()), nil
}
