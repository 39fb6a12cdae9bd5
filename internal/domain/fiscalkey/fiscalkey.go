// Package fiscalkey validates and formats the 44-digit access key printed on
// Brazilian electronic invoices (chave de acesso da NF-e).
package fiscalkey

import (
	"strings"
	"unicode"
)

// Length is the number of digits in a fiscal key.
const Length = 44

const groupSize = 4

// Clean removes every whitespace character from key.
func Clean(key string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, key)
}

// IsValid reports whether key holds exactly 44 ASCII digits once whitespace is removed.
func IsValid(key string) bool {
	clean := Clean(key)
	if len(clean) != Length {
		return false
	}
	for i := 0; i < len(clean); i++ {
		if clean[i] < '0' || clean[i] > '9' {
			return false
		}
	}
	return true
}

// Format regroups key into space separated blocks of four characters.
// Input that is empty after whitespace removal is returned unchanged.
func Format(key string) string {
	clean := []rune(Clean(key))
	if len(clean) == 0 {
		return key
	}

	var b strings.Builder
	for i := 0; i < len(clean); i += groupSize {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + groupSize
		if end > len(clean) {
			end = len(clean)
		}
		b.WriteString(string(clean[i:end]))
	}
	return b.String()
}

// Digits keeps only the ASCII digits of raw, without a length cap, so callers
// can still reject keys that are too long.
func Digits(raw string) string {
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			b.WriteByte(raw[i])
		}
	}
	return b.String()
}

// Sanitize keeps only ASCII digits from raw and caps the result at 44 digits.
// It mirrors what the tracking input accepts as typed or pasted input.
func Sanitize(raw string) string {
	var b strings.Builder
	for i := 0; i < len(raw) && b.Len() < Length; i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			b.WriteByte(raw[i])
		}
	}
	return b.String()
}
