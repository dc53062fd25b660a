// Package cmd implements the cashflow CLI commands.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/config"
	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/ledger"
	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/rates"
	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/store"
	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/pkg/logging"
)

var (
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "cashflow",
	Short: "Personal Budget Tracker CLI",
	Long:  "Track a salary and expenses, convert currencies, and export budget reports.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(logging.Setup)

	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Budget data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress the summary after mutations")
}

// openLedger wires the store and rates client into a ledger. The
// returned closer releases the database handle.
func openLedger() (*ledger.Ledger, config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, nil, err
	}

	dataDir := config.DataDir(cfg)
	if flagDataDir != "" {
		dataDir = flagDataDir
	}

	st, err := store.Open(filepath.Join(dataDir, "cashflow.db"))
	if err != nil {
		return nil, cfg, nil, err
	}

	led, err := ledger.New(st, rates.NewClient(cfg.Rates.BaseURL))
	if err != nil {
		_ = st.Close()
		return nil, cfg, nil, err
	}

	return led, cfg, func() { _ = st.Close() }, nil
}
