// Package render projects the budget record into a display model.
// The projection is a pure function of the budget; terminal drawing
// is the caller's job.
package render

import (
	"fmt"

	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/model"
)

// Row is one visible expense entry.
type Row struct {
	ID     int64
	Name   string
	Amount string // formatted with the currency symbol
}

// Snapshot is everything the display surface needs to draw the budget.
type Snapshot struct {
	Currency      string
	Symbol        string
	SalaryText    string
	Rows          []Row
	TotalExpenses float64
	Balance       float64
	BalanceText   string
	LowBalance    bool

	// Chart slice values, both always >= 0.
	ChartExpenses  float64
	ChartRemaining float64
}

// Symbol maps a currency code to its display symbol. Codes outside
// the mapped set fall back to "$".
func Symbol(code string) string {
	switch code {
	case "EUR":
		return "€"
	case "INR":
		return "₹"
	default:
		return "$"
	}
}

// Money formats an amount with the given symbol to 2 decimals.
func Money(symbol string, v float64) string {
	return fmt.Sprintf("%s%.2f", symbol, v)
}

// Project computes the display model for a budget. The low-balance
// flag is raised when the balance drops below 10% of a positive
// salary and is never raised while salary is zero or negative.
func Project(b *model.Budget) Snapshot {
	symbol := Symbol(b.Currency)
	total := b.TotalExpenses()
	balance := b.Salary - total

	rows := make([]Row, 0, len(b.Expenses))
	for _, e := range b.Expenses {
		rows = append(rows, Row{
			ID:     e.ID,
			Name:   e.Name,
			Amount: Money(symbol, e.Amount),
		})
	}

	remaining := balance
	if remaining < 0 {
		remaining = 0
	}

	return Snapshot{
		Currency:       b.Currency,
		Symbol:         symbol,
		SalaryText:     Money(symbol, b.Salary),
		Rows:           rows,
		TotalExpenses:  total,
		Balance:        balance,
		BalanceText:    Money(symbol, balance),
		LowBalance:     b.Salary > 0 && balance < 0.1*b.Salary,
		ChartExpenses:  total,
		ChartRemaining: remaining,
	}
}
