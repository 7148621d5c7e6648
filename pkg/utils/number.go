package utils

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatCurrency formata com separador de milhar e sem casas decimais (ex.: 300,000)
func FormatCurrency(f float64) string {
	return printer.Sprintf("%.0f", f)
}

// FormatPercent formata com uma casa decimal e sufixo % (ex.: 95.0%)
func FormatPercent(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64) + "%"
}

func FormatPoints(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
