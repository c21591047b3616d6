// Package currency renders and parses dollar amounts for display.
package currency

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const (
	symbol    = "$"
	zeroMoney = "$0.00"
	zeroTrend = "+0.0%"
)

var (
	ErrEmpty   = errors.New("empty amount")
	ErrInvalid = errors.New("invalid amount")
)

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
	billion  = decimal.NewFromInt(1_000_000_000)
	ten      = decimal.NewFromInt(10)
)

// Format renders amount as "$1,234.50" or "-$1,234.50". Halves round away from zero.
func Format(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	grouped, ok := group(rounded.Abs().StringFixed(2))
	if !ok {
		return zeroMoney
	}
	return sign(rounded) + symbol + grouped
}

type compactBucket struct {
	divisor decimal.Decimal
	suffix  string
}

var compactBuckets = []compactBucket{
	{thousand, "k"},
	{million, "M"},
	{billion, "B"},
}

// FormatCompact abbreviates amounts of a thousand or more with k, M or B. A scaled value
// that rounds below ten keeps one fraction digit; larger ones keep none. A value that
// rounds up to 1000 moves to the next suffix, so 999999.99 is "$1.0M". Amounts below a
// thousand fall back to Format.
func FormatCompact(amount decimal.Decimal) string {
	abs := amount.Abs()
	if abs.LessThan(thousand) {
		return Format(amount)
	}

	i := 0
	for i < len(compactBuckets)-1 && !abs.LessThan(compactBuckets[i+1].divisor) {
		i++
	}

	var fixed string
	for {
		scaled := abs.Div(compactBuckets[i].divisor)
		if scaled.Round(1).LessThan(ten) {
			fixed = scaled.StringFixed(1)
			break
		}
		if i < len(compactBuckets)-1 && !scaled.Round(0).LessThan(thousand) {
			i++
			continue
		}
		fixed = scaled.StringFixed(0)
		break
	}

	grouped, ok := group(fixed)
	if !ok {
		return zeroMoney
	}
	return sign(amount) + symbol + grouped + compactBuckets[i].suffix
}

// FormatTrend renders a percentage change as "+5.0%" or "-1,234.5%".
func FormatTrend(value decimal.Decimal) string {
	rounded := value.Round(1)
	grouped, ok := group(rounded.Abs().StringFixed(1))
	if !ok {
		return zeroTrend
	}
	prefix := "+"
	if rounded.IsNegative() {
		prefix = "-"
	}
	return prefix + grouped + "%"
}

// Parse reads user input such as " $1,234.50 " or "-200" into a decimal.
func Parse(s string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '$' || r == ',' {
			return -1
		}
		return r
	}, s)
	if cleaned == "" {
		return decimal.Zero, ErrEmpty
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	return d, nil
}

func sign(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-"
	}
	return ""
}

// group inserts thousands separators into the integer part of a non-negative fixed-point
// string. It reports false when the integer part does not fit in an int64.
func group(fixed string) (string, bool) {
	intPart, frac, hasFrac := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return "", false
	}
	out := humanize.Comma(n)
	if hasFrac {
		out += "." + frac
	}
	return out, true
}
