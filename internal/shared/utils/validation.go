package utils

import "net/mail"

// IsValidEmail reports whether s parses as an RFC 5322 address.
func IsValidEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
