package utils

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 8

// NormalizeEmail lowercases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail reports whether the address has a plausible email shape
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPassword reports whether the password meets the length policy
func IsValidPassword(password string) bool {
	return len(password) >= MinPasswordLength
}
