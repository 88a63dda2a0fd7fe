package format

import "strings"

// Phone re-groups an Indian mobile number for display: the +91/91/0
// prefix is stripped when a ten-digit subscriber number remains, and
// the result is split as "XXXXX XXXXX". Inputs that don't reduce to
// ten digits are returned trimmed but otherwise untouched; this is a
// display helper, not a validator.
func Phone(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	digits := cleaned
	switch {
	case strings.HasPrefix(digits, "+91") && len(digits) == 13:
		digits = digits[3:]
	case strings.HasPrefix(digits, "91") && len(digits) == 12:
		digits = digits[2:]
	case strings.HasPrefix(digits, "0") && len(digits) == 11:
		digits = digits[1:]
	}

	if len(digits) != 10 || !allDigits(digits) {
		return strings.TrimSpace(raw)
	}
	return digits[:5] + " " + digits[5:]
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
