package format

import "strings"

// DigitsOnly strips everything but 0-9 from a submitted phone number.
func DigitsOnly(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Phone renders stored digits as ddd-ddd-dddd. Values shorter than ten
// digits are split at the same offsets without padding ("12345" -> "123-45-").
func Phone(digits string) string {
	return clip(digits, 0, 3) + "-" + clip(digits, 3, 6) + "-" + clip(digits, 6, len(digits))
}

func clip(s string, from, to int) string {
	if from > len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}
