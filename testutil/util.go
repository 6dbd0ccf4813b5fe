package testutil

import (
	"math/rand"
)

// RandBytes returns length amount random bytes.
func RandBytes(length int) []byte {
	b := make([]byte, length)
	for i := range b {
		b[i] = byte(rand.Intn(256))
	}

	return b
}
