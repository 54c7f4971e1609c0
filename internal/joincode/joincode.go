package joincode

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Alphabet leaves out 0/O and 1/I so codes stay readable when shared aloud
// or scribbled on a whiteboard.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// DefaultLength is the join code length used for new teams.
const DefaultLength = 8

// Generate returns a random code of the given length drawn from Alphabet.
func Generate(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid join code length: %d", length)
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %v", err)
	}

	out := make([]byte, length)
	for i, b := range buf {
		out[i] = Alphabet[int(b)%len(Alphabet)]
	}
	return string(out), nil
}

// Normalize prepares user-entered codes for lookup: codes are stored
// uppercase, and pasted input often carries whitespace.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
