package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an expense by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(_ *cobra.Command, args []string) error {
	led, _, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid expense ID %q", args[0])
	}

	// Deleting an unknown ID is a silent no-op.
	if err := led.DeleteExpense(id); err != nil {
		return err
	}

	if flagQuiet {
		fmt.Printf("Deleted expense %d\n", id)
		return nil
	}
	showBudget(led)
	return nil
}
