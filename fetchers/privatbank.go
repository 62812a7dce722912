package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	rates "github.com/checkmateLL/privat-rates"
)

const (
	// PrivatBankAPIURL is the public archive endpoint; one GET per calendar day.
	PrivatBankAPIURL = "https://api.privatbank.ua/p24api/exchange_rates"

	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 256 << 10
)

type (
	// PrivatBankFetcher talks to the PrivatBank rate archive. The zero value
	// uses the real endpoint and a default client timeout.
	PrivatBankFetcher struct {
		URL    string
		Client *http.Client
	}

	privatBankResponse struct {
		Date         string            `json:"date"`
		Bank         string            `json:"bank"`
		ExchangeRate []privatBankEntry `json:"exchangeRate"`
	}

	privatBankEntry struct {
		Currency     string           `json:"currency"`
		SaleRate     *decimal.Decimal `json:"saleRate"`
		PurchaseRate *decimal.Decimal `json:"purchaseRate"`
	}
)

func (f PrivatBankFetcher) Fetch(ctx context.Context, date string) (rates.DailyRates, error) {
	apiURL := f.URL
	if apiURL == "" {
		apiURL = PrivatBankAPIURL
	}

	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	req.Header.Add("Accept", "application/json")

	q := req.URL.Query()
	q.Set("json", "")
	q.Set("date", date)
	req.URL.RawQuery = q.Encode()

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch rates for %s: %w", date, err)
	}
	defer func() { _ = res.Body.Close() }()

	if err := handleHTTPStatusCode(res); err != nil {
		return nil, fmt.Errorf("fetch rates for %s: %w", date, err)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body for %s: %w", date, err)
	}

	var data privatBankResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("unmarshal response for %s: %w", date, err)
	}

	dayRates := make(rates.CurrencyRates)
	for _, entry := range data.ExchangeRate {
		ccy := rates.Currency(entry.Currency)
		if !ccy.IsSupported() {
			continue
		}

		dayRates[ccy] = rates.RateRecord{
			Sale:     entry.SaleRate,
			Purchase: entry.PurchaseRate,
		}
	}

	// A well-formed response without EUR/USD is not an error, just an
	// empty day.
	if len(dayRates) == 0 {
		return rates.DailyRates{}, nil
	}

	return rates.DailyRates{date: dayRates}, nil
}
