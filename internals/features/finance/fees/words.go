// file: internals/features/finance/fees/words.go
package fees

import "strconv"

// wordsMax is the exclusive upper bound of full word expansion. At or above it
// AmountToWords falls back to the plain numeral; totals that large do not occur
// on a monthly voucher.
const wordsMax = 1_000_000

var onesNames = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensNames = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountToWords renders a non-negative integer amount in words for the printed
// voucher, e.g. 8000 -> "Eight Thousand Only". Zero renders as "Zero Only".
// Outside [0, 1,000,000) the plain numeral is emitted with the same suffix.
func AmountToWords(n int) string {
	if n == 0 {
		return "Zero Only"
	}
	if n < 0 || n >= wordsMax {
		return strconv.Itoa(n) + " Only"
	}

	words := magnitudeWords(n)
	out := words[0]
	for _, w := range words[1:] {
		out += " " + w
	}
	return out + " Only"
}

// magnitudeWords composes the token list for 0 < n < wordsMax, recursing over
// magnitude buckets. The "Only" suffix is appended exactly once by the caller.
func magnitudeWords(n int) []string {
	switch {
	case n < 20:
		return []string{onesNames[n]}
	case n < 100:
		words := []string{tensNames[n/10]}
		if rem := n % 10; rem != 0 {
			words = append(words, onesNames[rem])
		}
		return words
	case n < 1000:
		words := append(magnitudeWords(n/100), "Hundred")
		if rem := n % 100; rem != 0 {
			words = append(words, magnitudeWords(rem)...)
		}
		return words
	default:
		words := append(magnitudeWords(n/1000), "Thousand")
		if rem := n % 1000; rem != 0 {
			words = append(words, magnitudeWords(rem)...)
		}
		return words
	}
}
