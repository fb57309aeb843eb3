package utils

import (
	"fmt"
	"html"
	"log"
	"strings"
)

// ContainsString checks if a slice of strings contains a specific string, ignoring case.
func ContainsString(slice []string, str string) bool {
	for _, item := range slice {
		if strings.EqualFold(item, str) {
			return true
		}
	}
	return false
}

// GoSafe runs the given function in a new goroutine and recovers from any panic.
func GoSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[Panic Recovered] %v", r)
			}
		}()
		fn()
	}()
}

func ToPointer[T any](value T) *T {
	return &value
}

func EscapeHTML(text string) string {
	return html.EscapeString(text)
}

func FormatPercentage(value float64) string {
	return fmt.Sprintf("%+.1f%%", value)
}

// FormatMoney renders amount with a sign and two decimals, e.g. "+1,250.50 USD".
func FormatMoney(amount float64, currency string) string {
	sign := "+"
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole := fmt.Sprintf("%.2f", amount)
	intPart, frac := whole[:len(whole)-3], whole[len(whole)-2:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := fmt.Sprintf("%s%s.%s", sign, b.String(), frac)
	if currency != "" {
		out += " " + currency
	}
	return out
}
