package model

import "testing"

func TestNextID(t *testing.T) {
	b := New()
	if got := b.NextID(); got != 1 {
		t.Errorf("NextID on empty budget = %d, want 1", got)
	}

	b.Expenses = []Expense{{ID: 3}, {ID: 7}, {ID: 5}}
	if got := b.NextID(); got != 8 {
		t.Errorf("NextID = %d, want 8", got)
	}
}

func TestTotalsAndBalance(t *testing.T) {
	b := &Budget{
		Salary:   1000,
		Currency: "USD",
		Expenses: []Expense{
			{ID: 1, Name: "Food", Amount: 50.5},
			{ID: 2, Name: "Rent", Amount: 900},
		},
	}

	if got := b.TotalExpenses(); got != 950.5 {
		t.Errorf("TotalExpenses = %v, want 950.5", got)
	}
	if got := b.Balance(); got != 49.5 {
		t.Errorf("Balance = %v, want 49.5", got)
	}
}

func TestClone_Independent(t *testing.T) {
	b := &Budget{
		Salary:   100,
		Currency: "USD",
		Expenses: []Expense{{ID: 1, Name: "Food", Amount: 10}},
	}

	c := b.Clone()
	c.Salary = 200
	c.Expenses[0].Amount = 99
	c.Expenses = append(c.Expenses, Expense{ID: 2})

	if b.Salary != 100 {
		t.Errorf("clone mutation leaked into original salary: %v", b.Salary)
	}
	if b.Expenses[0].Amount != 10 {
		t.Errorf("clone mutation leaked into original expenses: %v", b.Expenses[0])
	}
	if len(b.Expenses) != 1 {
		t.Errorf("clone append leaked into original: %d entries", len(b.Expenses))
	}
}
