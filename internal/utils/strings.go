package utils

import (
	"regexp"
	"strings"
)

var (
	regNumberPattern = regexp.MustCompile(`^[A-Z0-9]{2,8}$`)
	phonePattern     = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{6,18}$`)
	emailPattern     = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// NormalizeRegNumber uppercases a vehicle registration number and strips
// internal whitespace, so "ab12 cde" and "AB12CDE" key the same quote
func NormalizeRegNumber(reg string) string {
	reg = strings.ToUpper(strings.TrimSpace(reg))
	return strings.ReplaceAll(reg, " ", "")
}

// ValidateRegNumber checks that a normalized registration number has a
// plausible plate shape
func ValidateRegNumber(reg string) bool {
	return regNumberPattern.MatchString(reg)
}

// ValidatePhoneNumber performs a loose shape check on a contact number.
// It accepts an optional leading + and common separators
func ValidatePhoneNumber(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}

// ValidateEmail performs a minimal structural check on an email address
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}
