package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/chart"
	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/cli"
	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/ledger"
	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/render"
)

var flagJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the budget: expenses, balance, and chart",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the raw budget state as JSON")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	led, _, closeStore, err := openLedger()
	if err != nil {
		return err
	}
	defer closeStore()

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(led.Budget())
	}

	showBudget(led)
	return nil
}

// showBudget draws the full budget summary: expense table, balance,
// low-balance warning, and the proportion chart.
func showBudget(led *ledger.Ledger) {
	snap := render.Project(led.Budget())

	fmt.Println()
	fmt.Println(cli.RenderTitle("CASHFLOW  " + snap.Currency))
	fmt.Println()

	fmt.Printf("  Salary: %s\n\n", snap.SalaryText)

	if len(snap.Rows) == 0 {
		fmt.Println("  No expenses recorded.")
		fmt.Println()
	} else {
		rows := make([][]string, 0, len(snap.Rows)+2)
		for _, r := range snap.Rows {
			rows = append(rows, []string{fmt.Sprintf("%d", r.ID), r.Name, r.Amount})
		}
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"", "TOTAL", render.Money(snap.Symbol, snap.TotalExpenses)})

		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Expenses",
			Headers: []string{"ID", "Name", "Amount"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	fmt.Printf("  Balance: %s\n", snap.BalanceText)
	if snap.LowBalance {
		fmt.Println(cli.RenderWarning("Low balance: less than 10% of salary remaining"))
	}
	fmt.Println()

	adapter := chart.NewAdapter(40)
	fmt.Println("  " + indent(adapter.Draw(snap.ChartExpenses, snap.ChartRemaining)))
	fmt.Println()
}

// indent shifts continuation lines to align with the two-space gutter.
func indent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n  ")
}
