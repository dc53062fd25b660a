package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/model"
)

func sampleBudget() *model.Budget {
	return &model.Budget{
		Salary:   1000,
		Currency: "USD",
		Expenses: []model.Expense{
			{ID: 1, Name: "Food", Amount: 50},
			{ID: 2, Name: "Rent", Amount: 900.25},
		},
	}
}

func TestBuild(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	l := Build(sampleBudget(), "$49.75", now)

	if l.Title != "Personal Budget Report" {
		t.Errorf("Title = %q", l.Title)
	}
	if l.Salary != "Total Salary: USD 1000" {
		t.Errorf("Salary = %q, want %q", l.Salary, "Total Salary: USD 1000")
	}
	if len(l.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(l.Items))
	}
	if l.Items[0] != "1. Food: 50" {
		t.Errorf("Items[0] = %q, want %q", l.Items[0], "1. Food: 50")
	}
	if l.Items[1] != "2. Rent: 900.25" {
		t.Errorf("Items[1] = %q, want %q", l.Items[1], "2. Rent: 900.25")
	}
	// The balance line copies the rendered text verbatim, symbol included.
	if l.Balance != "Final Balance: $49.75" {
		t.Errorf("Balance = %q", l.Balance)
	}
	if l.Stamp != "Generated Aug 30, 2026 12:00" {
		t.Errorf("Stamp = %q", l.Stamp)
	}
}

func TestBuild_EmptyBudget(t *testing.T) {
	l := Build(model.New(), "$0.00", time.Now())
	if len(l.Items) != 0 {
		t.Errorf("Items = %v, want none", l.Items)
	}
	if l.Salary != "Total Salary: USD 0" {
		t.Errorf("Salary = %q", l.Salary)
	}
}

func TestWrite(t *testing.T) {
	l := Build(sampleBudget(), "$49.75", time.Now())
	path := filepath.Join(t.TempDir(), Filename)

	if err := Write(l, path); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("report file is empty")
	}

	head := make([]byte, 5)
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := f.Read(head); err != nil {
		t.Fatal(err)
	}
	if string(head) != "%PDF-" {
		t.Errorf("file header = %q, want a PDF", head)
	}
}
