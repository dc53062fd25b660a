// Package chart draws the expenses/remaining proportion chart.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Fixed slice colors, expenses red and remaining green.
var (
	expenseColor   = lipgloss.Color("#E74C3C")
	remainingColor = lipgloss.Color("#2ECC71")

	expenseStyle   = lipgloss.NewStyle().Foreground(expenseColor)
	remainingStyle = lipgloss.NewStyle().Foreground(remainingColor)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#6F6E69"))
)

// Chart is one drawn proportion chart instance.
type Chart struct {
	Expenses  float64
	Remaining float64
	rendered  string
}

// View returns the rendered chart text.
func (c *Chart) View() string {
	return c.rendered
}

// Adapter owns at most one chart instance at a time. Each Draw
// discards the previous instance before creating the new one.
type Adapter struct {
	width   int
	current *Chart
}

// NewAdapter creates an adapter drawing bars of the given width.
func NewAdapter(width int) *Adapter {
	if width < 10 {
		width = 10
	}
	return &Adapter{width: width}
}

// Current returns the most recently drawn chart, or nil.
func (a *Adapter) Current() *Chart {
	return a.current
}

// Draw replaces the current chart with a new two-slice chart for the
// given non-negative values and returns its rendered text.
func (a *Adapter) Draw(expenses, remaining float64) string {
	a.current = nil

	c := &Chart{Expenses: expenses, Remaining: remaining}
	c.rendered = renderBar(expenses, remaining, a.width)
	a.current = c
	return c.rendered
}

func renderBar(expenses, remaining float64, width int) string {
	total := expenses + remaining

	var b strings.Builder
	if total <= 0 {
		b.WriteString(dimStyle.Render(strings.Repeat("░", width)))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("  nothing to chart yet"))
		return b.String()
	}

	expCells := int(expenses/total*float64(width) + 0.5)
	if expCells > width {
		expCells = width
	}
	// Keep a sliver visible for any non-zero slice.
	if expenses > 0 && expCells == 0 {
		expCells = 1
	}
	if remaining > 0 && expCells == width {
		expCells = width - 1
	}

	b.WriteString(expenseStyle.Render(strings.Repeat("█", expCells)))
	b.WriteString(remainingStyle.Render(strings.Repeat("█", width-expCells)))
	b.WriteString("\n")

	b.WriteString(expenseStyle.Render("■"))
	b.WriteString(fmt.Sprintf(" Expenses %.1f%%   ", expenses/total*100))
	b.WriteString(remainingStyle.Render("■"))
	b.WriteString(fmt.Sprintf(" Remaining %.1f%%", remaining/total*100))
	return b.String()
}
