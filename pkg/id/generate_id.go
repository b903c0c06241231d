package id

import (
	"crypto/rand"
	"encoding/hex"
)

// New32 returns exactly 32 lowercase hex characters, the public id
// format used for loans, payments and credit configurations.
func New32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
