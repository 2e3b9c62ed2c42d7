package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// DecimalToFloat arredonda para duas casas antes de converter para float64
func DecimalToFloat(d decimal.Decimal) float64 {
	return RoundWithTwoDecimalPlace(d.Round(2).InexactFloat64())
}

// FormatCurrency formata um valor monetário com separador de milhar e duas casas,
// por exemplo "R$ 1,234.56".
func FormatCurrency(symbol string, amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, decPart, _ := strings.Cut(fixed, ".")
	result := groupThousands(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}

	if symbol == "" {
		return result
	}
	return symbol + " " + result
}

// FormatInt formata um inteiro sem separadores
func FormatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
