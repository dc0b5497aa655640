package validators

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\d{8,10}$`)
)

// IsEmail checks the local@domain.tld shape only; no DNS lookup is made.
func IsEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func IsPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// MaxLen counts runes so accented names are not penalized.
func MaxLen(s string, n int) bool {
	return len([]rune(s)) <= n
}

func MinLen(s string, n int) bool {
	return len([]rune(s)) >= n
}
