package utils

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeWord lower-cases and trims a raw dictionary entry.
func NormalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// RuneLen returns the number of letters in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// IsOnlyLetters checks if a string consists entirely of letters
func IsOnlyLetters(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	str := strconv.Itoa(n)
	if n < 1000 {
		return str
	}
	var b strings.Builder
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(char)
	}
	return b.String()
}
