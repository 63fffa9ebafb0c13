package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"first.last@sub.domain.co", true},
		{"user+tag@example.com", true},
		{"", false},
		{"not-an-email", false},
		{"@example.com", false},
		{"user@", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+15551234567", true},
		{"15551234567", true},
		{"+628123456789", true},
		{"12345", false},
		{"+1-555-123-4567", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidPhoneNumber(tt.phone))
		})
	}
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "jo******@example.com", MaskEmail("johndoe1@example.com"))
	assert.Equal(t, "ab@example.com", MaskEmail("ab@example.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}

func TestMaskPhoneNumber(t *testing.T) {
	assert.Equal(t, "*******4567", MaskPhoneNumber("+15551234567"))
	assert.Equal(t, "1234", MaskPhoneNumber("1234"))
}
