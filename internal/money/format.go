package money

import (
	"math"
	"strconv"
	"strings"

	"github.com/noah-isme/billing-engine/internal/common"
	"github.com/noah-isme/billing-engine/internal/currency"
)

// Options control the higher-level money rendering.
type Options struct {
	// ShowCurrencyCode renders the ISO code instead of the symbol. The code is
	// placed after the amount, except for CHF which conventionally leads.
	ShowCurrencyCode bool
}

// Symbol placement labels, also used as metric label values.
const (
	PlacementCodeBefore   = "code_before"
	PlacementCodeAfter    = "code_after"
	PlacementSymbolAfter  = "symbol_after"
	PlacementSymbolBefore = "symbol_before"
	PlacementBare         = "bare"
)

// Format renders value to precision decimal places with thousands grouping.
// The sign is reattached after grouping so separators never interleave with
// the leading minus, and the fractional part is appended only when precision
// is positive.
func Format(value float64, precision int, decimalSep, thousandSep string) string {
	if precision < 0 {
		precision = 0
	}
	v := common.FloatOrZero(value)
	fixed := strconv.FormatFloat(math.Abs(v), 'f', precision, 64)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	out := groupThousands(intPart, thousandSep)
	if precision > 0 {
		out += decimalSep + fracPart
	}
	if v < 0 {
		out = "-" + out
	}
	return out
}

// FormatMoney renders value using the currency's locale settings, with the
// country's non-empty overrides taking precedence.
func FormatMoney(value float64, cur currency.Currency, country *currency.Country, opts Options) string {
	thousand, decimal := separators(cur, country)
	amount := Format(value, cur.Precision, decimal, thousand)

	switch Placement(cur, country, opts) {
	case PlacementCodeBefore:
		return cur.Code + " " + amount
	case PlacementCodeAfter:
		return amount + " " + cur.Code
	case PlacementSymbolAfter:
		return amount + " " + symbol(cur)
	case PlacementSymbolBefore:
		return symbol(cur) + " " + amount
	default:
		return amount
	}
}

// Placement resolves the symbol placement branch for a currency/country pair.
// Priority: explicit currency code > swapped symbol > symbol before amount.
func Placement(cur currency.Currency, country *currency.Country, opts Options) string {
	if opts.ShowCurrencyCode && cur.Code != "" {
		if cur.Code == "CHF" {
			return PlacementCodeBefore
		}
		return PlacementCodeAfter
	}
	if symbol(cur) == "" {
		if cur.Code == "" {
			return PlacementBare
		}
		return PlacementCodeAfter
	}
	if cur.SwapCurrencySymbol || (country != nil && country.SwapCurrencySymbol) {
		return PlacementSymbolAfter
	}
	return PlacementSymbolBefore
}

func separators(cur currency.Currency, country *currency.Country) (thousand, decimal string) {
	thousand = cur.ThousandSeparator
	decimal = cur.DecimalSeparator
	if country != nil {
		if country.ThousandSeparator != "" {
			thousand = country.ThousandSeparator
		}
		if country.DecimalSeparator != "" {
			decimal = country.DecimalSeparator
		}
	}
	if thousand == "" {
		thousand = ","
	}
	if decimal == "" {
		decimal = "."
	}
	return thousand, decimal
}

func symbol(cur currency.Currency) string {
	return strings.TrimSpace(cur.Symbol)
}

func groupThousands(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
