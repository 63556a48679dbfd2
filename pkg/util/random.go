package util

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
)

// GenerateRandomNumber generates a random number between min and max (inclusive)
func GenerateRandomNumber(min, max int) int {
	return min + rand.Intn(max-min+1)
}

var usernameInvalidChars = regexp.MustCompile(`[^a-z0-9_]+`)

// GenerateUsername derives a lowercase, space-free username from a display name,
// with a random numeric suffix to reduce collisions
func GenerateUsername(fullName string) string {
	base := strings.ToLower(strings.TrimSpace(fullName))
	base = strings.ReplaceAll(base, " ", "_")
	base = usernameInvalidChars.ReplaceAllString(base, "")
	if base == "" {
		base = "user"
	}
	return fmt.Sprintf("%s%d", base, GenerateRandomNumber(1000, 9999))
}
