package shared

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Round2 rounds an amount to cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders an amount the way the register prints it.
func FormatBRL(v float64) string {
	return brlPrinter.Sprintf("R$ %.2f", v)
}
