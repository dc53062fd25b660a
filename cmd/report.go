package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/render"
	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/report"
)

var flagReportDir string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export the budget summary as a PDF",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&flagReportDir, "out", "o", ".", "Directory to write the report into")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	led, _, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	snap := render.Project(led.Budget())
	lines := report.Build(led.Budget(), snap.BalanceText, time.Now())

	path := filepath.Join(flagReportDir, report.Filename)
	if err := report.Write(lines, path); err != nil {
		return err
	}

	fmt.Printf("  Report written to %s\n", path)
	return nil
}
