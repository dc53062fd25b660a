// Package model defines the budget record and its derived values.
package model

// DefaultCurrency is the currency assumed when no saved state exists.
const DefaultCurrency = "USD"

// Expense is a named positive amount contributing to total spend.
type Expense struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Budget is the single record holding salary, currency, and the
// insertion-ordered expense list.
type Budget struct {
	Salary   float64   `json:"salary"`
	Expenses []Expense `json:"expenses"`
	Currency string    `json:"currency"`
}

// New returns an empty budget with the default currency.
func New() *Budget {
	return &Budget{
		Expenses: []Expense{},
		Currency: DefaultCurrency,
	}
}

// TotalExpenses sums all expense amounts.
func (b *Budget) TotalExpenses() float64 {
	var total float64
	for _, e := range b.Expenses {
		total += e.Amount
	}
	return total
}

// Balance is salary minus total expenses, in the current currency.
func (b *Budget) Balance() float64 {
	return b.Salary - b.TotalExpenses()
}

// NextID returns the next expense ID. IDs increase monotonically
// within a budget, so two expenses added back to back never collide.
func (b *Budget) NextID() int64 {
	var maxID int64
	for _, e := range b.Expenses {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID + 1
}

// Clone returns a deep copy of the budget.
func (b *Budget) Clone() *Budget {
	out := &Budget{
		Salary:   b.Salary,
		Currency: b.Currency,
		Expenses: make([]Expense, len(b.Expenses)),
	}
	copy(out.Expenses, b.Expenses)
	return out
}
