package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/config"
)

// currencyChoices are the codes offered by the setup wizard.
var currencyChoices = []string{"USD", "EUR", "INR", "GBP", "JPY", "CAD", "AUD", "CHF", "CNY"}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	dataDir := cfg.General.DataDir
	baseURL := cfg.Rates.BaseURL
	currencies := cfg.General.Currencies

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Data directory").
				Description("Where the budget database lives. Leave empty for the XDG default.").
				Placeholder(config.DataDir(config.DefaultConfig())).
				Value(&dataDir),
			huh.NewMultiSelect[string]().
				Title("Currency selector options").
				Description("Codes offered when converting currencies.").
				Options(huh.NewOptions(currencyChoices...)...).
				Value(&currencies),
			huh.NewInput().
				Title("Rates API base URL").
				Description("Leave empty for open.er-api.com.").
				Value(&baseURL),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.General.DataDir = dataDir
	cfg.Rates.BaseURL = baseURL
	if len(currencies) > 0 {
		cfg.General.Currencies = currencies
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `cashflow setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
