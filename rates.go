package rates

import "context"

type (
	// Fetcher retrieves the quoted rates for a single calendar day.
	// The date is in the provider wire format (see DateLayout).
	//
	// A day the provider has no EUR/USD quotes for is an empty DailyRates
	// with a nil error; a non-nil error always means the request itself
	// failed (transport, status, decoding).
	Fetcher interface {
		Fetch(ctx context.Context, date string) (DailyRates, error)
	}
)
