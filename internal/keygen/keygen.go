package keygen

import (
	"errors"
	"math/rand"
)

const (
	// Alphabet is the character set for short codes
	Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// DefaultKeyLength is the default short code length
	DefaultKeyLength = 6
	// DefaultMaxAttempts is the number of tries per length before growing
	DefaultMaxAttempts = 10
	// maxKeyLength bounds fallback lengthening; at 32 characters the
	// keyspace is far beyond anything an in-memory store can hold
	maxKeyLength = 32
)

// ErrKeyspaceExhausted is returned when no free key can be found even
// after growing the key length to its bound
var ErrKeyspaceExhausted = errors.New("key space exhausted")

// RandomKey returns a pseudo-random alphanumeric key of the given length.
// Not cryptographically secure; short codes only need to be unique.
func RandomKey(length int) string {
	if length <= 0 {
		length = DefaultKeyLength
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = Alphabet[rand.Intn(len(Alphabet))]
	}
	return string(b)
}

// UniqueKey returns a random key not present according to exists.
// It tries maxAttempts keys per length; when all collide it grows the
// length by one and resets the attempt counter, so termination is
// guaranteed for any realistic number of existing keys.
func UniqueKey(exists func(string) bool, length, maxAttempts int) (string, error) {
	if length <= 0 {
		length = DefaultKeyLength
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	for ; length <= maxKeyLength; length++ {
		for i := 0; i < maxAttempts; i++ {
			key := RandomKey(length)
			if !exists(key) {
				return key, nil
			}
		}
	}

	return "", ErrKeyspaceExhausted
}
