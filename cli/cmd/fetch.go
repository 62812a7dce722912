package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	rates "github.com/checkmateLL/privat-rates"
	"github.com/checkmateLL/privat-rates/fetchers"
	"github.com/checkmateLL/privat-rates/services"
)

func parseDays(arg string) (int, error) {
	days, err := strconv.Atoi(arg)
	if err != nil || days < services.MinDays || days > services.MaxDays {
		return 0, fmt.Errorf("please provide a valid number of days (%d-%d)", services.MinDays, services.MaxDays)
	}

	return days, nil
}

func newRatesService(config *Config, errLogger *log.Logger) (*services.RatesService, error) {
	if config.RatesService != nil {
		return config.RatesService, nil
	}

	provider, err := rates.ConvertToProviderFromString(viper.GetString("fetchers.provider"))
	if err != nil {
		return nil, err
	}

	fetcher, err := fetchers.NewRateFetcher(provider, fetchers.Config{
		URL:     viper.GetString("fetchers.privatbank.url"),
		Timeout: viper.GetDuration("fetchers.privatbank.timeout"),
	})
	if err != nil {
		return nil, err
	}

	return &services.RatesService{
		Fetcher: fetcher,
		Logger:  errLogger,
	}, nil
}

func fetch(config *Config) *cobra.Command {
	fetchCmd := &cobra.Command{
		Use:   "fetch <days>",
		Short: "Fetch EUR/USD rates for the trailing <days> calendar days (1-10)",
		Args:  cobra.ExactArgs(1),
	}

	fetchCmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger := log.New(cmd.OutOrStdout(), "fetch ", 0)
		errLogger := log.New(cmd.ErrOrStderr(), "fetch-error ", 0)

		days, err := parseDays(args[0])
		if err != nil {
			return err
		}

		service, err := newRatesService(config, errLogger)
		if err != nil {
			return err
		}

		collected, err := service.GetRatesForDays(config.Ctx, days)
		if err != nil {
			return err
		}

		if debug {
			logger.Printf("fetched rates for %d of %d requested days", len(collected), days)
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")

		return encoder.Encode(collected)
	}

	return fetchCmd
}
