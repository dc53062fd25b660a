package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/model"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cashflow.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoad_FreshDatabase(t *testing.T) {
	s := openTemp(t)

	b, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if b.Salary != 0 || b.Currency != "USD" || len(b.Expenses) != 0 {
		t.Fatalf("fresh load = %+v, want empty USD budget", b)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := openTemp(t)

	in := &model.Budget{
		Salary:   1234.56,
		Currency: "EUR",
		Expenses: []model.Expense{
			{ID: 1, Name: "Food", Amount: 50},
			{ID: 2, Name: "Rent", Amount: 900.25},
		},
	}
	if err := s.Save(in); err != nil {
		t.Fatal(err)
	}

	out, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch:\nsaved  %+v\nloaded %+v", in, out)
	}
}

func TestSave_OverwritesPriorSnapshot(t *testing.T) {
	s := openTemp(t)

	if err := s.Save(&model.Budget{Salary: 100, Currency: "USD", Expenses: []model.Expense{}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(&model.Budget{Salary: 200, Currency: "INR", Expenses: []model.Expense{}}); err != nil {
		t.Fatal(err)
	}

	b, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if b.Salary != 200 || b.Currency != "INR" {
		t.Fatalf("loaded %+v, want the second snapshot", b)
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("snapshot rows = %d, want 1", count)
	}
}

func TestLoad_MalformedSnapshotFallsBack(t *testing.T) {
	s := openTemp(t)

	_, err := s.db.Exec(`INSERT OR REPLACE INTO snapshots (key, value, updated_at)
		VALUES (?, ?, ?)`, snapshotKey, "{not json", "2026-01-01T00:00:00Z")
	if err != nil {
		t.Fatal(err)
	}

	b, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if b.Salary != 0 || b.Currency != "USD" || len(b.Expenses) != 0 {
		t.Fatalf("malformed load = %+v, want default budget", b)
	}
}

func TestLoad_ReopenedDatabase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cashflow.db")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(&model.Budget{Salary: 42, Currency: "USD", Expenses: []model.Expense{}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	b, err := s2.Load()
	if err != nil {
		t.Fatal(err)
	}
	if b.Salary != 42 {
		t.Fatalf("Salary = %v after reopen, want 42", b.Salary)
	}
}
