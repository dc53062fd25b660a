// Package report generates the downloadable PDF budget summary.
package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/model"
)

// Filename is the fixed name of the exported report.
const Filename = "Budget_Report.pdf"

// Lines is the textual content of the report.
type Lines struct {
	Title   string
	Salary  string
	Items   []string // one per expense, in display order
	Balance string
	Stamp   string
}

// Build assembles the report text from the budget and the currently
// rendered balance line. balanceText is copied verbatim, formatting
// and currency symbol included.
func Build(b *model.Budget, balanceText string, now time.Time) Lines {
	items := make([]string, 0, len(b.Expenses))
	for i, e := range b.Expenses {
		items = append(items, fmt.Sprintf("%d. %s: %s", i+1, e.Name, formatAmount(e.Amount)))
	}

	return Lines{
		Title:   "Personal Budget Report",
		Salary:  fmt.Sprintf("Total Salary: %s %s", b.Currency, formatAmount(b.Salary)),
		Items:   items,
		Balance: "Final Balance: " + balanceText,
		Stamp:   "Generated " + now.Format("Jan 2, 2006 15:04"),
	}
}

// Write renders the lines to a PDF file at path.
func Write(l Lines, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "", 18)
	pdf.Text(20, 20, tr(l.Title))

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, 40, tr(l.Salary))

	y := 50.0
	for _, item := range l.Items {
		pdf.Text(20, y, tr(item))
		y += 10
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(20, y+10, tr(l.Balance))

	pdf.SetFont("Helvetica", "I", 9)
	pdf.Text(20, y+25, tr(l.Stamp))

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// formatAmount prints an amount without trailing zeros, matching the
// raw values stored in the snapshot.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
