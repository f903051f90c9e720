package ident

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	ActionIDBytes = 48
	HitIDBytes    = 16
)

// New returns a hex-encoded token built from nBytes of crypto/rand output.
func New(nBytes int) (string, error) {
	if nBytes <= 0 {
		return "", fmt.Errorf("invalid identifier length: %d", nBytes)
	}

	buf := make([]byte, nBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
