package cmd

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <amount>",
	Short: "Add an expense",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	led, _, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		// Let the ledger reject it with its own validation error.
		amount = math.NaN()
	}

	e, err := led.AddExpense(args[0], amount)
	if err != nil {
		return err
	}

	if flagQuiet {
		fmt.Printf("Added expense %d: %s\n", e.ID, e.Name)
		return nil
	}
	showBudget(led)
	return nil
}
