package fetchers

import (
	"fmt"
	"net/http"
	"time"

	rates "github.com/checkmateLL/privat-rates"
)

type Config struct {
	URL     string
	Timeout time.Duration
}

func NewRateFetcher(provider rates.Provider, config Config) (rates.Fetcher, error) {
	switch provider {
	case rates.PrivatBankProvider:
		var client *http.Client
		if config.Timeout > 0 {
			client = &http.Client{Timeout: config.Timeout}
		}

		return PrivatBankFetcher{
			URL:    config.URL,
			Client: client,
		}, nil
	}

	return nil, fmt.Errorf("no fetcher registered for provider %s", provider)
}
