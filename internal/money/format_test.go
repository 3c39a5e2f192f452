package money

import (
	"testing"

	"github.com/noah-isme/billing-engine/internal/currency"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		value     float64
		precision int
		decimal   string
		thousand  string
		want      string
	}{
		{1234567.5, 2, ".", ",", "1,234,567.50"},
		{-42, 0, ".", ",", "-42"},
		{0, 2, ".", ",", "0.00"},
		{999, 2, ".", ",", "999.00"},
		{1000, 2, ".", ",", "1,000.00"},
		{1234567.891, 2, ",", ".", "1.234.567,89"},
		{-1234.5, 2, ".", ",", "-1,234.50"},
		{12345, 0, ",", ".", "12.345"},
	}
	for _, tc := range cases {
		got := Format(tc.value, tc.precision, tc.decimal, tc.thousand)
		if got != tc.want {
			t.Fatalf("Format(%v, %d, %q, %q) = %q, want %q", tc.value, tc.precision, tc.decimal, tc.thousand, got, tc.want)
		}
	}
}

func TestFormatMoneyPlacement(t *testing.T) {
	usd := currency.Currency{Code: "USD", Symbol: "$", Precision: 2, ThousandSeparator: ",", DecimalSeparator: "."}
	eur := currency.Currency{Code: "EUR", Symbol: "€", Precision: 2, ThousandSeparator: ".", DecimalSeparator: ",", SwapCurrencySymbol: true}
	chf := currency.Currency{Code: "CHF", Symbol: "CHF", Precision: 2, ThousandSeparator: "'", DecimalSeparator: "."}

	// Default: symbol leads the amount.
	if got := FormatMoney(1000, usd, nil, Options{}); got != "$ 1,000.00" {
		t.Fatalf("default placement: %q", got)
	}
	// Swapped symbol trails the amount.
	if got := FormatMoney(1000, eur, nil, Options{}); got != "1.000,00 €" {
		t.Fatalf("swap placement: %q", got)
	}
	// Currency code wins over the swap flag and trails the amount.
	if got := FormatMoney(1000, eur, nil, Options{ShowCurrencyCode: true}); got != "1.000,00 EUR" {
		t.Fatalf("code placement: %q", got)
	}
	// CHF is the single code placed before the amount.
	if got := FormatMoney(1000, chf, nil, Options{ShowCurrencyCode: true}); got != "CHF 1'000.00" {
		t.Fatalf("CHF placement: %q", got)
	}
}

func TestFormatMoneyCountryOverrides(t *testing.T) {
	usd := currency.Currency{Code: "USD", Symbol: "$", Precision: 2, ThousandSeparator: ",", DecimalSeparator: "."}
	de := &currency.Country{Code: "DE", ThousandSeparator: ".", DecimalSeparator: ",", SwapCurrencySymbol: true}

	if got := FormatMoney(1234.5, usd, de, Options{}); got != "1.234,50 $" {
		t.Fatalf("country override: %q", got)
	}

	// Empty-string overrides leave the currency defaults in place.
	blank := &currency.Country{Code: "US"}
	if got := FormatMoney(1234.5, usd, blank, Options{}); got != "$ 1,234.50" {
		t.Fatalf("blank country: %q", got)
	}
}

func TestFormatMoneyZeroCurrencyDefaults(t *testing.T) {
	if got := FormatMoney(1234.5, currency.Currency{}, nil, Options{}); got != "1,234" {
		t.Fatalf("zero currency: %q", got)
	}
}

func TestPlacementLabels(t *testing.T) {
	usd := currency.Currency{Code: "USD", Symbol: "$"}
	if got := Placement(usd, nil, Options{}); got != PlacementSymbolBefore {
		t.Fatalf("expected symbol_before, got %s", got)
	}
	if got := Placement(usd, nil, Options{ShowCurrencyCode: true}); got != PlacementCodeAfter {
		t.Fatalf("expected code_after, got %s", got)
	}
	chf := currency.Currency{Code: "CHF", Symbol: "CHF"}
	if got := Placement(chf, nil, Options{ShowCurrencyCode: true}); got != PlacementCodeBefore {
		t.Fatalf("expected code_before, got %s", got)
	}
	swapped := currency.Currency{Code: "EUR", Symbol: "€", SwapCurrencySymbol: true}
	if got := Placement(swapped, nil, Options{}); got != PlacementSymbolAfter {
		t.Fatalf("expected symbol_after, got %s", got)
	}
	if got := Placement(currency.Currency{}, nil, Options{}); got != PlacementBare {
		t.Fatalf("expected bare, got %s", got)
	}
}
