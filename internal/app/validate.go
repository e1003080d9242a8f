package app

import (
	"fmt"
	"strings"
)

// ValidateRequired rejects blank values for a mandatory field.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// ValidateEmail checks the minimal shape user@domain.tld: exactly one "@"
// with a dot somewhere in the domain part.
func ValidateEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return fmt.Errorf("invalid email %q", email)
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	if dot <= 0 || dot == len(domain)-1 {
		return fmt.Errorf("invalid email %q", email)
	}
	return nil
}

// NormalizePhone strips formatting characters and keeps the digits.
// Anything shorter than 8 digits is rejected.
func NormalizePhone(phone string) (string, error) {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) < 8 {
		return "", fmt.Errorf("phone %q is too short", phone)
	}
	return digits, nil
}
