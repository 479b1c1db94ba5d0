package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Lowercases",
			input:    "Alice@Example.COM",
			expected: "alice@example.com",
		},
		{
			name:     "Trims whitespace",
			input:    "  bob@example.com  ",
			expected: "bob@example.com",
		},
		{
			name:     "Already normalized",
			input:    "carol@example.com",
			expected: "carol@example.com",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeEmail(tc.input))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	testCases := []struct {
		name  string
		email string
		valid bool
	}{
		{name: "Valid address", email: "alice@example.com", valid: true},
		{name: "Valid with plus alias", email: "alice+trips@example.com", valid: true},
		{name: "Missing at sign", email: "alice.example.com", valid: false},
		{name: "Missing domain", email: "alice@", valid: false},
		{name: "Missing TLD", email: "alice@example", valid: false},
		{name: "Empty", email: "", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsValidEmail(tc.email))
		})
	}
}

func TestIsValidPassword(t *testing.T) {
	assert.False(t, IsValidPassword("short"))
	assert.False(t, IsValidPassword("1234567"))
	assert.True(t, IsValidPassword("12345678"))
	assert.True(t, IsValidPassword("a much longer passphrase"))
}
