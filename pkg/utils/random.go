package utils

import "math/rand/v2"

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RandString returns a join code of n characters.
func RandString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.IntN(len(letters))]
	}
	return string(b)
}
