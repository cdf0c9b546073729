package utils

import "strings"

// Mask keeps the first five characters of an identifier for log correlation
// and hides the rest.
func Mask(s string) string {
	if s == "" {
		return "?"
	}
	if len(s) > 5 {
		return s[:5] + "***"
	}
	return "***"
}

// MaskCardNo keeps only the last four digits of a card number.
func MaskCardNo(cardNo string) string {
	if len(cardNo) <= 4 {
		return strings.Repeat("*", len(cardNo))
	}
	return strings.Repeat("*", len(cardNo)-4) + cardNo[len(cardNo)-4:]
}
