package currency

// BaseCurrencyID identifies the pivot currency every exchange rate in the
// reference table is expressed against.
const BaseCurrencyID = "1"

// Rate returns the cross exchange rate between two currencies, always
// pivoting through the base currency rather than a direct pair. A lookup miss
// on either side yields the identity rate 1 so callers can treat the amount
// as already correct. from == to needs no branch of its own: a currency's
// rate relative to itself cancels to 1 in the pivot formula.
func Rate(from, to string, table []Currency) float64 {
	return rateVia(BaseCurrencyID, from, to, table)
}

func rateVia(base, from, to string, table []Currency) float64 {
	source, okFrom := find(table, from)
	target, okTo := find(table, to)
	if !okFrom || !okTo {
		return 1
	}
	if from == base {
		return target.ExchangeRate
	}
	if source.ExchangeRate == 0 {
		// A zero stored rate is treated like a missing record.
		return 1
	}
	if to == base {
		return 1 / source.ExchangeRate
	}
	return target.ExchangeRate * (1 / source.ExchangeRate)
}

// Convert applies the cross rate to an amount.
func Convert(amount float64, from, to string, table []Currency) float64 {
	return amount * Rate(from, to, table)
}

func find(table []Currency, id string) (Currency, bool) {
	if id == "" {
		return Currency{}, false
	}
	for _, c := range table {
		if c.ID == id {
			return c, true
		}
	}
	return Currency{}, false
}
