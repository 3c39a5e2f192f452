package currency

// Currency is a read-only reference record. ExchangeRate is expressed relative
// to the base currency (id "1"); the base's own rate is 1 by data invariant.
type Currency struct {
	ID                 string  `json:"id"`
	Code               string  `json:"code"`
	Symbol             string  `json:"symbol"`
	Precision          int     `json:"precision"`
	ThousandSeparator  string  `json:"thousand_separator"`
	DecimalSeparator   string  `json:"decimal_separator"`
	SwapCurrencySymbol bool    `json:"swap_currency_symbol"`
	ExchangeRate       float64 `json:"exchange_rate"`
}

// Country carries optional locale overrides. An empty separator means "no
// override"; SwapCurrencySymbol only overrides when set.
type Country struct {
	ID                 string `json:"id"`
	Code               string `json:"code"`
	ThousandSeparator  string `json:"thousand_separator"`
	DecimalSeparator   string `json:"decimal_separator"`
	SwapCurrencySymbol bool   `json:"swap_currency_symbol"`
}

// Table bundles the reference data handed to the engine by the lookup layer.
type Table struct {
	Currencies []Currency `json:"currencies"`
	Countries  []Country  `json:"countries"`
}

// seedTable is the built-in reference data used when no currency file is
// configured. Rates are illustrative; deployments override them via
// CURRENCY_FILE or the cache refresh path.
func seedTable() Table {
	return Table{
		Currencies: []Currency{
			{ID: "1", Code: "USD", Symbol: "$", Precision: 2, ThousandSeparator: ",", DecimalSeparator: ".", ExchangeRate: 1},
			{ID: "2", Code: "GBP", Symbol: "£", Precision: 2, ThousandSeparator: ",", DecimalSeparator: ".", ExchangeRate: 0.79},
			{ID: "3", Code: "EUR", Symbol: "€", Precision: 2, ThousandSeparator: ".", DecimalSeparator: ",", SwapCurrencySymbol: true, ExchangeRate: 0.92},
			{ID: "4", Code: "CHF", Symbol: "CHF", Precision: 2, ThousandSeparator: "'", DecimalSeparator: ".", ExchangeRate: 0.88},
			{ID: "5", Code: "JPY", Symbol: "¥", Precision: 0, ThousandSeparator: ",", DecimalSeparator: ".", ExchangeRate: 147.2},
			{ID: "6", Code: "IDR", Symbol: "Rp", Precision: 0, ThousandSeparator: ".", DecimalSeparator: ",", ExchangeRate: 16310},
		},
		Countries: []Country{
			{ID: "840", Code: "US"},
			{ID: "276", Code: "DE", ThousandSeparator: ".", DecimalSeparator: ",", SwapCurrencySymbol: true},
			{ID: "756", Code: "CH", ThousandSeparator: "'", DecimalSeparator: "."},
			{ID: "360", Code: "ID", ThousandSeparator: ".", DecimalSeparator: ","},
		},
	}
}
