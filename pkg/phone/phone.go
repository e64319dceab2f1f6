// Package phone normalizes and validates Nigerian mobile numbers.
package phone

import (
	"regexp"
	"strings"
)

// nigerianPattern matches an 11-digit Nigerian mobile number: a valid
// network prefix followed by 8 digits, e.g. 08012345678.
var nigerianPattern = regexp.MustCompile(`^(070|080|081|090|091)\d{8}$`)

// Normalize strips separator characters (spaces, dashes, parentheses)
// so "080-1234-5678" and "08012345678" store identically.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch r {
		case ' ', '\t', '-', '(', ')':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValid reports whether the normalized number is a valid Nigerian
// mobile number.
func IsValid(normalized string) bool {
	return nigerianPattern.MatchString(normalized)
}
