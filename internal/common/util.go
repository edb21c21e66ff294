package common

import "crypto/rand"

// RandBytes reads size bytes from crypto/rand.
func RandBytes(size int) ([]byte, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// WipeByteArray zeroes b. Used for passwords read from a terminal and
// derived keys.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
