package rates

import "github.com/shopspring/decimal"

type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
)

var supportedCurrencies = map[Currency]struct{}{
	EUR: {},
	USD: {},
}

func (c Currency) IsSupported() bool {
	_, ok := supportedCurrencies[c]
	return ok
}

// RateRecord is one currency's quotes for one day. Either side may be
// absent in the upstream feed; a nil pointer serializes as null.
type RateRecord struct {
	Sale     *decimal.Decimal `json:"sale"`
	Purchase *decimal.Decimal `json:"purchase"`
}

type CurrencyRates map[Currency]RateRecord

// DailyRates holds one fetched day, keyed by its wire-format date.
// An empty map means the day produced no EUR/USD data.
type DailyRates map[string]CurrencyRates
