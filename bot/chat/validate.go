package chat

import (
	"regexp"
	"unicode/utf8"
)

// Re-prompt texts for the lead capture sub-steps.
const (
	PromptInvalidName    = "Please enter a valid name."
	PromptInvalidEmail   = "Please enter a valid email address (e.g., user@domain.com)."
	PromptInvalidPhone   = "Please enter a valid phone number (at least 7 digits)."
	PromptInvalidPurpose = "Please describe your purpose in a little more detail."
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidName requires at least 2 characters.
func IsValidName(name string) bool {
	return utf8.RuneCountInString(name) >= 2
}

// IsValidEmail checks the standard local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// PhoneDigits strips all non-digit characters.
func PhoneDigits(phone string) string {
	digits := ""
	for _, ch := range phone {
		if ch >= '0' && ch <= '9' {
			digits += string(ch)
		}
	}
	return digits
}

// IsValidPhone requires at least 7 digits after stripping formatting.
func IsValidPhone(phone string) bool {
	return len(PhoneDigits(phone)) >= 7
}

// IsValidPurpose requires at least 5 characters.
func IsValidPurpose(purpose string) bool {
	return utf8.RuneCountInString(purpose) >= 5
}
