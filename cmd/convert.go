package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/config"
)

var convertCmd = &cobra.Command{
	Use:   "convert <currency>",
	Short: "Convert all amounts to another currency",
	Long:  "Fetch the live exchange rate and rescale the salary and every expense. On any failure the budget is left unchanged.",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(_ *cobra.Command, args []string) error {
	led, cfg, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	target := strings.ToUpper(strings.TrimSpace(args[0]))
	if !config.HasCurrency(cfg, target) {
		return fmt.Errorf("unknown currency %q (configured: %s)",
			args[0], strings.Join(cfg.General.Currencies, ", "))
	}

	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Fetching %s rates...\n", led.Budget().Currency)
	}

	if err := led.Convert(context.Background(), target); err != nil {
		return err
	}

	if flagQuiet {
		fmt.Printf("Converted to %s\n", target)
		return nil
	}
	showBudget(led)
	return nil
}
