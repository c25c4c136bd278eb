package currency

import "strings"

// Normalize upper-cases a configured ISO-4217 code and falls back when the
// value is not a three-letter code. Prices from the provider pass through
// unformatted; only the outbound query uses this.
func Normalize(code, fallback string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return fallback
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return fallback
		}
	}
	return code
}
