package cmd

import (
	"context"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	rates "github.com/checkmateLL/privat-rates"
	"github.com/checkmateLL/privat-rates/fetchers"
	"github.com/checkmateLL/privat-rates/services"
)

var (
	rootCmd = &cobra.Command{
		Use:     "privat-rates",
		Short:   "PrivatBank archive exchange rate fetcher",
		Version: "v1.0.0",
	}
	debug      bool
	configFile string
)

type (
	Config struct {
		Ctx context.Context
		// RatesService overrides the viper-built service; tests inject
		// a preconfigured one here.
		RatesService *services.RatesService
	}
)

func init() {
	// Quotes are numbers on the wire and in the output.
	decimal.MarshalJSONWithoutQuotes = true
}

func Execute(config *Config) error {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug flag")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./config.yml", "Path to config file")
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(fetch(config))

	return rootCmd.Execute()
}

func initConfig() {
	absolutePath, _ := filepath.Abs(configFile)

	viper.SetConfigFile(absolutePath)
	viper.SetEnvPrefix("PRIVAT_RATES")
	viper.AutomaticEnv()

	viper.SetDefault("fetchers.provider", rates.PrivatBankProvider.String())
	viper.SetDefault("fetchers.privatbank.url", fetchers.PrivatBankAPIURL)
	viper.SetDefault("fetchers.privatbank.timeout", "15s")

	// A missing config file is fine, defaults and environment cover
	// everything.
	_ = viper.ReadInConfig()
}
