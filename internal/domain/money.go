package domain

import "fmt"

// FormatCents renders an amount of minor currency units as a decimal
// string, e.g. 12345 -> "123.45" and -50 -> "-0.50". All arithmetic in
// this codebase stays in integer cents; this is for display only.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
