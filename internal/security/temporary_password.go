package security

import (
	"crypto/rand"
	"fmt"
)

// temporaryPasswordAlphabet leaves out 0, O, 1, l and I.
const temporaryPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

const MinTemporaryPasswordLength = 8

// TemporaryPassword returns a random password drawn uniformly from
// temporaryPasswordAlphabet. Lengths below MinTemporaryPasswordLength are
// raised to it.
func TemporaryPassword(length int) (string, error) {
	if length < MinTemporaryPasswordLength {
		length = MinTemporaryPasswordLength
	}
	return drawFromAlphabet(length, temporaryPasswordAlphabet)
}

// drawFromAlphabet maps random bytes onto alphabet, dropping bytes at or
// above the largest multiple of len(alphabet) so every symbol is equally
// likely.
func drawFromAlphabet(length int, alphabet string) (string, error) {
	size := len(alphabet)
	if size == 0 || size > 256 {
		return "", fmt.Errorf("alphabet size %d out of range", size)
	}
	ceiling := 256 - 256%size

	password := make([]byte, 0, length)
	buffer := make([]byte, length*2)
	for len(password) < length {
		if _, err := rand.Read(buffer); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, value := range buffer {
			if int(value) >= ceiling {
				continue
			}
			password = append(password, alphabet[int(value)%size])
			if len(password) == length {
				break
			}
		}
	}
	return string(password), nil
}
