// Package model defines the core domain types for the chequeflow application.
package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Amount is a non-negative monetary value with satang (two decimal digit)
// precision. Baht and Satang are held separately so the written-text
// conversion can decompose each part independently.
type Amount struct {
	Baht   int64
	Satang int
}

// ParseAmount parses a user-supplied decimal string into an Amount.
// The boolean reports whether the input was parseable; malformed or
// negative input is not an error, callers treat it as "no amount".
func ParseAmount(s string) (Amount, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return Amount{}, false
	}

	// Round to the minor unit the same way the printed amount is rounded.
	total := int64(math.Round(f * 100))
	return Amount{Baht: total / 100, Satang: int(total % 100)}, true
}

// IsZero reports whether the amount is exactly zero baht and zero satang.
func (a Amount) IsZero() bool {
	return a.Baht == 0 && a.Satang == 0
}

// Float returns the amount as a float64 number of baht.
func (a Amount) Float() float64 {
	return float64(a.Baht) + float64(a.Satang)/100
}

// String renders the amount as a plain decimal with two fractional digits.
func (a Amount) String() string {
	return fmt.Sprintf("%d.%02d", a.Baht, a.Satang)
}

// Grouped renders the amount with thousands separators, e.g. "1,234.50".
func (a Amount) Grouped() string {
	digits := strconv.FormatInt(a.Baht, 10)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("%s.%02d", b.String(), a.Satang)
}

// Boxed renders the amount the way it appears in the cheque's numeric
// amount box: "=1,234.50=".
func (a Amount) Boxed() string {
	return "=" + a.Grouped() + "="
}
