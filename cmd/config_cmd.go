package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", config.DataDir(cfg))
	fmt.Printf("    Currencies:     %s\n", strings.Join(cfg.General.Currencies, ", "))
	fmt.Println()

	fmt.Println("  [Rates]")
	if cfg.Rates.BaseURL != "" {
		fmt.Printf("    Base URL: %s\n", cfg.Rates.BaseURL)
	} else {
		fmt.Println("    Base URL: https://open.er-api.com/v6/latest (default)")
	}

	return nil
}
