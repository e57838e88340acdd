// Package validate holds the input shape checks shared by the signup and
// update handlers. They are plain booleans; callers decide the HTTP response.
package validate

import "regexp"

var (
	emailRegex = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	phoneRegex = regexp.MustCompile(`^[0-9+-]+$`)
	upperRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex = regexp.MustCompile(`[0-9]`)
)

// Email reports whether s looks like local@domain.tld.
func Email(s string) bool {
	return emailRegex.MatchString(s)
}

// Password enforces the account password policy: 8 to 16 characters,
// at least one uppercase letter and at least one digit.
func Password(s string) bool {
	if len(s) < 8 || len(s) > 16 {
		return false
	}
	if !upperRegex.MatchString(s) {
		return false
	}
	return digitRegex.MatchString(s)
}

// Phone accepts at least 9 characters out of digits, '+' and '-'.
func Phone(s string) bool {
	if len(s) < 9 {
		return false
	}
	return phoneRegex.MatchString(s)
}
