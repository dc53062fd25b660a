// Package ledger applies user actions to the budget record and
// persists it after every mutation.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/model"
)

var (
	// ErrInvalidName indicates an empty expense name after trimming.
	ErrInvalidName = errors.New("ledger: expense name must not be empty")
	// ErrInvalidAmount indicates a non-positive or non-numeric amount.
	ErrInvalidAmount = errors.New("ledger: expense amount must be a positive number")
	// ErrConversionInFlight indicates a conversion is already running.
	ErrConversionInFlight = errors.New("ledger: a conversion is already in progress")
)

// RateSource provides exchange-rate multipliers.
type RateSource interface {
	Rate(ctx context.Context, base, target string) (float64, error)
}

// Store persists budget snapshots.
type Store interface {
	Load() (*model.Budget, error)
	Save(*model.Budget) error
}

// Ledger owns the budget record for the session. Every mutation is
// followed by a full snapshot save.
type Ledger struct {
	budget *model.Budget
	store  Store
	rates  RateSource

	converting atomic.Bool
}

// New rehydrates the budget from the store and wraps it in a Ledger.
func New(store Store, rates RateSource) (*Ledger, error) {
	b, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Ledger{budget: b, store: store, rates: rates}, nil
}

// Budget returns the current budget record.
func (l *Ledger) Budget() *model.Budget {
	return l.budget
}

// SetSalary parses raw input into the new salary. Empty or
// non-numeric input coerces to 0; negative values are accepted.
func (l *Ledger) SetSalary(raw string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	l.budget.Salary = v
	return l.store.Save(l.budget)
}

// AddExpense validates and appends a new expense. Append order is
// display order.
func (l *Ledger) AddExpense(name string, amount float64) (model.Expense, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Expense{}, ErrInvalidName
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return model.Expense{}, ErrInvalidAmount
	}

	e := model.Expense{
		ID:     l.budget.NextID(),
		Name:   name,
		Amount: amount,
	}
	l.budget.Expenses = append(l.budget.Expenses, e)
	if err := l.store.Save(l.budget); err != nil {
		return model.Expense{}, err
	}
	return e, nil
}

// DeleteExpense removes the expense with the given ID. Unknown IDs
// are a silent no-op.
func (l *Ledger) DeleteExpense(id int64) error {
	for i, e := range l.budget.Expenses {
		if e.ID == id {
			l.budget.Expenses = append(l.budget.Expenses[:i], l.budget.Expenses[i+1:]...)
			break
		}
	}
	return l.store.Save(l.budget)
}

// Converting reports whether a conversion is currently in flight.
func (l *Ledger) Converting() bool {
	return l.converting.Load()
}

// Convert fetches the rate from the current currency to target and
// rescales salary and every expense amount, each rounded to 2
// decimals. On any failure the budget is left unchanged. Only one
// conversion may run at a time; a second call fails fast with
// ErrConversionInFlight so two conversions never apply to
// inconsistent base state.
func (l *Ledger) Convert(ctx context.Context, target string) error {
	base, err := l.BeginConvert()
	if err != nil {
		return err
	}
	rate, err := l.FetchRate(ctx, base, target)
	return l.FinishConvert(target, rate, err)
}

// BeginConvert reserves the single conversion slot and returns the
// base currency the rate must be fetched for. A second call before
// FinishConvert fails fast with ErrConversionInFlight.
func (l *Ledger) BeginConvert() (string, error) {
	if !l.converting.CompareAndSwap(false, true) {
		return "", ErrConversionInFlight
	}
	return l.budget.Currency, nil
}

// FetchRate fetches the base-to-target multiplier. It never touches
// the budget record, so callers may run it off the UI goroutine while
// the update loop keeps mutating state.
func (l *Ledger) FetchRate(ctx context.Context, base, target string) (float64, error) {
	return l.rates.Rate(ctx, base, target)
}

// FinishConvert completes a conversion started with BeginConvert and
// releases the slot. With a fetch error it logs and leaves the budget
// unchanged. Otherwise it rescales the budget as it stands now: the
// base currency cannot have changed while the slot was held, so the
// rate stays valid for mutations recorded during the fetch. Must run
// on the same goroutine as the other mutation operations.
func (l *Ledger) FinishConvert(target string, rate float64, fetchErr error) error {
	defer l.converting.Store(false)

	base := l.budget.Currency
	if fetchErr != nil {
		slog.Error("currency conversion failed",
			"base", base, "target", target, "err", fetchErr)
		return fmt.Errorf("converting %s to %s: %w", base, target, fetchErr)
	}

	next := l.budget.Clone()
	next.Salary = scale(next.Salary, rate)
	for i := range next.Expenses {
		next.Expenses[i].Amount = scale(next.Expenses[i].Amount, rate)
	}
	next.Currency = target

	// Persist the converted copy first so a failed save leaves the
	// in-memory record untouched.
	if err := l.store.Save(next); err != nil {
		slog.Error("saving converted budget failed", "err", err)
		return err
	}
	l.budget = next
	return nil
}

// scale multiplies v by rate and rounds half away from zero to 2
// decimal places.
func scale(v, rate float64) float64 {
	d := decimal.NewFromFloat(v).Mul(decimal.NewFromFloat(rate))
	return d.Round(2).InexactFloat64()
}
