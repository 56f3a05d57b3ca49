// Package token validates GitHub personal access tokens before the
// profile fetch is attempted.
package token

import "unicode/utf8"

// validLength is the exact character count a token must have.
const validLength = 40

// IsValid reports whether tok has exactly 40 characters. This is a pure
// length check with no charset or checksum validation; the API itself is
// the real authority, so the gate only filters obviously wrong input.
func IsValid(tok string) bool {
	return utf8.RuneCountInString(tok) == validLength
}
