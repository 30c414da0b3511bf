package eligibility

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/unicode/norm"
)

var (
	leadingNumber = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)`)
	germanPrinter = message.NewPrinter(language.German)
)

// NormalizeText applies NFKC normalization and trims surrounding whitespace
func NormalizeText(value string) string {
	return strings.TrimSpace(norm.NFKC.String(value))
}

// NormalizePostalCode keeps only the digits of a normalized postal code
func NormalizePostalCode(value string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, NormalizeText(value))
}

// ParseAmount reads an amount in German ("25.000,50") or plain ("25000.5")
// notation. Currency signs and spaces are ignored. A dot followed by exactly
// three digits is a thousands separator, the first comma is the decimal
// separator, and the longest numeric prefix wins.
func ParseAmount(value string) (float64, bool) {
	normalized := NormalizeText(value)
	if normalized == "" {
		return 0, false
	}

	numeric := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			return r
		}
		return -1
	}, normalized)
	if numeric == "" {
		return 0, false
	}

	sanitized := strings.Replace(dropThousandsDots(numeric), ",", ".", 1)
	match := leadingNumber.FindString(sanitized)
	if match == "" {
		return 0, false
	}

	parsed, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, false
	}
	return parsed, true
}

// dropThousandsDots removes every dot followed by exactly three digits and
// then a non-digit or the end of input.
func dropThousandsDots(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '.' && isThousandsGroup(s[i+1:]) {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isThousandsGroup(rest string) bool {
	if len(rest) < 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if rest[i] < '0' || rest[i] > '9' {
			return false
		}
	}
	return len(rest) == 3 || rest[3] < '0' || rest[3] > '9'
}

// FormatAmount renders an amount in German notation with two decimals
func FormatAmount(amount float64) string {
	return germanPrinter.Sprintf("%.2f", amount)
}

func formatInteger(n int) string {
	return germanPrinter.Sprintf("%d", n)
}
