package util

import "strings"

// MaxDocumentLength is the directory username limit for document numbers.
const MaxDocumentLength = 14

// NormalizeDocument strips every non-digit character from a document number
// (CPF). "123.456.789-00" becomes "12345678900". The normalized value is what
// gets used as the Cognito username.
func NormalizeDocument(document string) string {
	var b strings.Builder
	b.Grow(len(document))
	for _, r := range document {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidDocument reports whether a normalized document number is usable as a
// directory username: digits only, 1 to MaxDocumentLength characters.
func ValidDocument(document string) bool {
	if len(document) == 0 || len(document) > MaxDocumentLength {
		return false
	}
	for _, r := range document {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
