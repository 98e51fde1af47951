package pipeline

import "strings"

// NormalizePhone canonicalizes a raw phone number into a gateway-friendly
// form. Numbers already carrying the international "+" prefix are kept as-is.
// After stripping spaces and leading zeros, a bare 10-digit number gets the
// default country code; anything else passes through unchanged and is left
// for the gateway to reject.
func NormalizePhone(raw, countryCode string) string {
	num := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	if strings.HasPrefix(num, "+") {
		return num
	}

	num = strings.TrimLeft(num, "0")

	if len(num) == 10 && isAllDigits(num) {
		return countryCode + num
	}
	return num
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
