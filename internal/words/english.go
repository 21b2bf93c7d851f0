package words

import (
	"strings"

	"github.com/chequeflow/chequeflow/internal/model"
)

var (
	englishOnes = []string{
		"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
		"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
		"Sixteen", "Seventeen", "Eighteen", "Nineteen",
	}
	englishTens = []string{
		"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
		"Eighty", "Ninety",
	}
)

const (
	englishZeroPhrase = "Zero Baht Only"

	// TooLargeMarker is the sentinel emitted for integer parts of one
	// billion baht or more, which have no specified magnitude name.
	TooLargeMarker = "Number too large"
)

// englishText writes the amount in English cheque wording: major and
// minor clauses joined with "and" when both are present, and the "Only"
// suffix always appended.
func englishText(amt model.Amount) string {
	if amt.IsZero() {
		return englishZeroPhrase
	}

	var b strings.Builder
	if amt.Baht > 0 {
		b.WriteString(englishNumber(amt.Baht))
		b.WriteString(" Baht")
	}

	if amt.Satang > 0 {
		if b.Len() > 0 {
			b.WriteString(" and ")
		}
		b.WriteString(englishNumber(int64(amt.Satang)))
		b.WriteString(" Satang")
	}

	b.WriteString(" Only")
	return b.String()
}

// englishNumber spells a non-negative integer by recursive magnitude
// bands. Values of one billion or more yield the too-large marker
// instead of a numeric phrase.
func englishNumber(n int64) string {
	switch {
	case n < 20:
		return englishOnes[n]
	case n < 100:
		s := englishTens[n/10]
		if n%10 != 0 {
			s += "-" + englishNumber(n%10)
		}
		return s
	case n < 1_000:
		s := englishNumber(n/100) + " Hundred"
		if n%100 != 0 {
			s += " " + englishNumber(n%100)
		}
		return s
	case n < 1_000_000:
		s := englishNumber(n/1_000) + " Thousand"
		if n%1_000 != 0 {
			s += " " + englishNumber(n%1_000)
		}
		return s
	case n < 1_000_000_000:
		s := englishNumber(n/1_000_000) + " Million"
		if n%1_000_000 != 0 {
			s += " " + englishNumber(n%1_000_000)
		}
		return s
	default:
		return TooLargeMarker
	}
}
