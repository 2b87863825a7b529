package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRegex           = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,4}$`)
	passwordCharsetRegex = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]{8,}$`)
)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsStrongPassword requires 8+ characters from [A-Za-z0-9@$!%*?&] with at
// least one lowercase letter, one uppercase letter and one digit.
func IsStrongPassword(password string) bool {
	if !passwordCharsetRegex.MatchString(password) {
		return false
	}

	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	return lower && upper && digit
}

func IsBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
