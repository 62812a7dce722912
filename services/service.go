package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	rates "github.com/checkmateLL/privat-rates"
)

const (
	MinDays = 1
	MaxDays = 10
)

var ErrInvalidDayCount = errors.New("number of days must be between 1 and 10")

// RatesService fans one fetch per trailing calendar day out to the
// configured Fetcher and joins the results most-recent-first.
//
// Logger receives per-date failure diagnostics; nil disables them. Now is
// the clock used to anchor the date range; nil means time.Now.
type RatesService struct {
	Fetcher rates.Fetcher
	Logger  *log.Logger
	Now     func() time.Time
}

// GetRatesForDays fetches rates for today and the days-1 preceding calendar
// days. Failed or empty days are dropped from the result; the only error
// this method itself returns is ErrInvalidDayCount, raised before any
// network activity.
func (s RatesService) GetRatesForDays(ctx context.Context, days int) ([]rates.DailyRates, error) {
	if days < MinDays || days > MaxDays {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidDayCount, days)
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	dates := make([]string, days)
	for i := range dates {
		dates[i] = rates.FormatDate(now.AddDate(0, 0, -i))
	}

	runID := uuid.NewString()
	results := make([]rates.DailyRates, days)

	// Each goroutine writes only its own slot, so the batch needs no
	// locking; the WaitGroup is the single join point and every fetch is
	// allowed to finish.
	var wg sync.WaitGroup
	wg.Add(days)

	for i, date := range dates {
		go func(i int, date string) {
			defer wg.Done()

			fetched, err := s.Fetcher.Fetch(ctx, date)
			if err != nil {
				s.logf("run %s: fetching rates for %s: %v", runID, date, err)
				return
			}

			results[i] = fetched
		}(i, date)
	}

	wg.Wait()

	collected := make([]rates.DailyRates, 0, days)
	for _, dayRates := range results {
		if len(dayRates) == 0 {
			continue
		}

		collected = append(collected, dayRates)
	}

	return collected, nil
}

func (s RatesService) logf(format string, args ...interface{}) {
	if s.Logger == nil {
		return
	}

	s.Logger.Printf(format, args...)
}
