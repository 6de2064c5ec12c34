// Package money formats and parses Indian rupee amounts held in minor
// units (paise).
package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// MinorPerMajor is the number of paise in one rupee.
	MinorPerMajor = 100
	// Crore is 1,00,00,000 rupees.
	Crore = 10_000_000
	// Lakh is 1,00,000 rupees.
	Lakh = 100_000

	symbol = "₹"
)

// ErrInvalidAmount is returned by ParseMajor for unparseable input.
var ErrInvalidAmount = errors.New("invalid amount")

// Format renders minor units as whole rupees with Indian digit grouping,
// e.g. 12500000 → "₹1,25,000". Paise are rounded half away from zero.
func Format(minor int64) string {
	neg := minor < 0
	abs := uint64(minor)
	if neg {
		abs = uint64(-minor)
	}
	rupees := abs / MinorPerMajor
	if abs%MinorPerMajor >= MinorPerMajor/2 {
		rupees++
	}
	out := symbol + groupIndian(rupees)
	if neg && rupees != 0 {
		out = "-" + out
	}
	return out
}

// FormatShort renders a compact label: "₹X.Y Cr" from one crore rupees,
// "₹X.Y L" from one lakh, otherwise the full Format output.
func FormatShort(minor int64) string {
	rupees := float64(minor) / MinorPerMajor
	switch {
	case rupees >= Crore:
		return fmt.Sprintf("%s%.1f Cr", symbol, rupees/Crore)
	case rupees >= Lakh:
		return fmt.Sprintf("%s%.1f L", symbol, rupees/Lakh)
	default:
		return Format(minor)
	}
}

// groupIndian inserts commas the Indian way: the last three digits form one
// group, every earlier group has two digits (12,34,56,789).
func groupIndian(n uint64) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]

	var b strings.Builder
	lead := len(head) % 2
	if lead > 0 {
		b.WriteString(head[:lead])
	}
	for i := lead; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}

// ParseMajor parses a user-entered rupee amount such as "5000", "₹5,000"
// or "1,25,000.50" into minor units. At most two decimal places are
// accepted and the result must be positive.
func ParseMajor(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, symbol)
	clean = strings.TrimPrefix(clean, "Rs.")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	whole, frac, hasFrac := strings.Cut(clean, ".")
	if whole == "" {
		whole = "0"
	}
	rupees, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || rupees < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if rupees > (math.MaxInt64-(MinorPerMajor-1))/MinorPerMajor {
		return 0, fmt.Errorf("%w: %q is too large", ErrInvalidAmount, s)
	}

	var paise int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, fmt.Errorf("%w: %q has more than two decimal places", ErrInvalidAmount, s)
		}
		if len(frac) == 1 {
			frac += "0"
		}
		paise, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || paise < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
	}

	minor := rupees*MinorPerMajor + paise
	if minor <= 0 {
		return 0, fmt.Errorf("%w: %q must be greater than zero", ErrInvalidAmount, s)
	}
	return minor, nil
}
