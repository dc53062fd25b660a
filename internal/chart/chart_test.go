package chart

import (
	"strings"
	"testing"
)

func TestDraw_ReplacesHandle(t *testing.T) {
	a := NewAdapter(20)

	a.Draw(30, 70)
	first := a.Current()
	if first == nil {
		t.Fatal("no chart after first draw")
	}

	a.Draw(50, 50)
	second := a.Current()
	if second == nil {
		t.Fatal("no chart after second draw")
	}
	if first == second {
		t.Fatal("chart handle was reused instead of replaced")
	}
	if second.Expenses != 50 || second.Remaining != 50 {
		t.Errorf("chart = %+v, want 50/50", second)
	}
}

func TestDraw_Percentages(t *testing.T) {
	a := NewAdapter(20)
	out := a.Draw(25, 75)

	if !strings.Contains(out, "Expenses 25.0%") {
		t.Errorf("output missing expense share:\n%s", out)
	}
	if !strings.Contains(out, "Remaining 75.0%") {
		t.Errorf("output missing remaining share:\n%s", out)
	}
}

func TestDraw_ZeroTotal(t *testing.T) {
	a := NewAdapter(20)
	out := a.Draw(0, 0)

	if !strings.Contains(out, "nothing to chart") {
		t.Errorf("zero total should render a placeholder, got:\n%s", out)
	}
	if a.Current() == nil {
		t.Error("zero total should still produce a chart handle")
	}
}

func TestDraw_TinySliceStaysVisible(t *testing.T) {
	a := NewAdapter(20)
	out := a.Draw(1, 999)

	// A non-zero expense slice rounds to at least one cell.
	if !strings.Contains(out, "Expenses 0.1%") {
		t.Errorf("expected tiny expense share, got:\n%s", out)
	}
}
