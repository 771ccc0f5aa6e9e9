package schedule

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/eladgel/nof-ai/internal/domain"
)

var (
	rateRegex   = regexp.MustCompile(`(\d+\.?\d*)[\s\p{Zs}]*%`)
	shekelRegex = regexp.MustCompile(`(\d+\.?\d*)[\s\p{Zs}]*₪`)
	dollarRegex = regexp.MustCompile(`(\d+\.?\d*)[\s\p{Zs}]*\$`)
)

// Tier range shapes, after commas and whitespace are stripped. Checked in order.
var (
	rangeBetweenRegex = regexp.MustCompile(`^מעל(\d+(?:\.\d+)?)ועד(\d+(?:\.\d+)?)$`)
	rangeUpToRegex    = regexp.MustCompile(`^עד(\d+(?:\.\d+)?)$`)
	rangeAboveRegex   = regexp.MustCompile(`^מעל(\d+(?:\.\d+)?)$`)
)

var thousand = decimal.NewFromInt(1000)

// ExtractRate returns the first number directly followed by a percent sign, or zero.
func ExtractRate(text string) decimal.Decimal {
	return firstMatch(rateRegex, text)
}

// ExtractCurrency returns the first number directly followed by a shekel sign,
// falling back to a dollar sign, or zero.
//
// Digits before a thousands separator are not part of the match, so
// "7,150.00 ₪" yields 150. Downstream figures depend on this.
func ExtractCurrency(text string) decimal.Decimal {
	if m := shekelRegex.FindStringSubmatch(text); m != nil {
		return domain.SafeParse(trimDot(m[1]))
	}
	return firstMatch(dollarRegex, text)
}

// ParseTierRange converts a band label such as "מעל 25 ועד 50" (thousands of
// local currency) into inclusive bounds. A nil upper bound means unbounded.
// Unrecognized labels cover everything.
func ParseTierRange(label string) (decimal.Decimal, *decimal.Decimal) {
	norm := strings.Map(func(r rune) rune {
		if r == ',' || isSpace(r) {
			return -1
		}
		return r
	}, label)

	if m := rangeBetweenRegex.FindStringSubmatch(norm); m != nil {
		hi := thousands(m[2])
		return thousands(m[1]), &hi
	}
	if m := rangeUpToRegex.FindStringSubmatch(norm); m != nil {
		hi := thousands(m[1])
		return decimal.Zero, &hi
	}
	if m := rangeAboveRegex.FindStringSubmatch(norm); m != nil {
		return thousands(m[1]), nil
	}
	return decimal.Zero, nil
}

func firstMatch(re *regexp.Regexp, text string) decimal.Decimal {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero
	}
	return domain.SafeParse(trimDot(m[1]))
}

// trimDot drops a dangling decimal point ("25." -> "25").
func trimDot(s string) string {
	return strings.TrimSuffix(s, ".")
}

func thousands(s string) decimal.Decimal {
	return domain.SafeParse(s).Mul(thousand)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\u200e' || r == '\u200f'
}
