package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var salaryCmd = &cobra.Command{
	Use:   "salary <amount>",
	Short: "Set the monthly salary",
	Long:  "Set the monthly salary. Non-numeric input is treated as 0.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSalary,
}

func init() {
	rootCmd.AddCommand(salaryCmd)
}

func runSalary(_ *cobra.Command, args []string) error {
	led, _, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := led.SetSalary(args[0]); err != nil {
		return err
	}

	if flagQuiet {
		fmt.Printf("Salary set to %.2f %s\n", led.Budget().Salary, led.Budget().Currency)
		return nil
	}
	showBudget(led)
	return nil
}
