// Package tui implements the interactive budget dashboard.
package tui

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/chart"
	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/cli"
	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/config"
	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/ledger"
	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/render"
	"github.com/thakurabhinavsinghchauhan/Cashflow-BudgetTracker/internal/report"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeSalary
)

// rateFetchedMsg delivers the fetched exchange rate. Only the network
// fetch runs off the update loop; the budget mutation is applied when
// this message arrives, so state is only ever touched on the UI
// goroutine.
type rateFetchedMsg struct {
	target string
	rate   float64
	err    error
}

// App is the bubbletea model for the dashboard.
type App struct {
	led *ledger.Ledger
	cfg config.Config

	chart *chart.Adapter

	mode       mode
	cursor     int
	targetIdx  int // index into cfg.General.Currencies
	converting bool

	nameIn   textinput.Model
	amountIn textinput.Model
	salaryIn textinput.Model
	spin     spinner.Model

	status string
	width  int
	height int
}

// New creates the dashboard around an already-loaded ledger.
func New(led *ledger.Ledger, cfg config.Config) App {
	nameIn := textinput.New()
	nameIn.Placeholder = "name"
	nameIn.CharLimit = 64
	nameIn.Width = 20

	amountIn := textinput.New()
	amountIn.Placeholder = "amount"
	amountIn.CharLimit = 16
	amountIn.Width = 12

	salaryIn := textinput.New()
	salaryIn.Placeholder = "salary"
	salaryIn.CharLimit = 16
	salaryIn.Width = 12

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(cli.ColorAccent)

	return App{
		led:      led,
		cfg:      cfg,
		chart:    chart.NewAdapter(36),
		nameIn:   nameIn,
		amountIn: amountIn,
		salaryIn: salaryIn,
		spin:     sp,
	}
}

func (a App) Init() tea.Cmd {
	return a.spin.Tick
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case rateFetchedMsg:
		a.converting = false
		if err := a.led.FinishConvert(msg.target, msg.rate, msg.err); err != nil {
			a.status = "Conversion failed: " + err.Error()
		} else {
			a.status = "Converted to " + msg.target
		}
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case modeAdd:
			return a.updateAdd(msg)
		case modeSalary:
			return a.updateSalary(msg)
		default:
			return a.updateBrowse(msg)
		}
	}

	return a, nil
}

func (a App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(a.led.Budget().Expenses)

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}

	case "down", "j":
		if a.cursor < n-1 {
			a.cursor++
		}

	case "a":
		a.mode = modeAdd
		a.status = ""
		a.nameIn.SetValue("")
		a.amountIn.SetValue("")
		a.amountIn.Blur()
		return a, a.nameIn.Focus()

	case "s":
		a.mode = modeSalary
		a.status = ""
		a.salaryIn.SetValue("")
		return a, a.salaryIn.Focus()

	case "x", "d":
		if n == 0 {
			return a, nil
		}
		e := a.led.Budget().Expenses[a.cursor]
		if err := a.led.DeleteExpense(e.ID); err != nil {
			a.status = "Delete failed: " + err.Error()
			return a, nil
		}
		if a.cursor >= n-1 && a.cursor > 0 {
			a.cursor--
		}
		a.status = "Deleted " + e.Name

	case "c":
		a.targetIdx = (a.targetIdx + 1) % len(a.cfg.General.Currencies)

	case "enter":
		if a.converting {
			// One conversion at a time.
			return a, nil
		}
		target := a.cfg.General.Currencies[a.targetIdx]
		if target == a.led.Budget().Currency {
			a.status = "Already in " + target
			return a, nil
		}
		base, err := a.led.BeginConvert()
		if err != nil {
			a.status = err.Error()
			return a, nil
		}
		a.converting = true
		a.status = ""
		led := a.led
		return a, func() tea.Msg {
			rate, err := led.FetchRate(context.Background(), base, target)
			return rateFetchedMsg{target: target, rate: rate, err: err}
		}

	case "r":
		snap := render.Project(a.led.Budget())
		lines := report.Build(a.led.Budget(), snap.BalanceText, time.Now())
		if err := report.Write(lines, report.Filename); err != nil {
			a.status = "Export failed: " + err.Error()
		} else {
			a.status = "Wrote " + report.Filename
		}
	}

	return a, nil
}

func (a App) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeBrowse
		a.nameIn.Blur()
		a.amountIn.Blur()
		return a, nil

	case "tab", "shift+tab":
		if a.nameIn.Focused() {
			a.nameIn.Blur()
			return a, a.amountIn.Focus()
		}
		a.amountIn.Blur()
		return a, a.nameIn.Focus()

	case "enter":
		amount, err := strconv.ParseFloat(strings.TrimSpace(a.amountIn.Value()), 64)
		if err != nil {
			amount = math.NaN()
		}
		if _, err := a.led.AddExpense(a.nameIn.Value(), amount); err != nil {
			a.status = err.Error()
			return a, nil
		}
		a.mode = modeBrowse
		a.nameIn.Blur()
		a.amountIn.Blur()
		a.status = "Added " + strings.TrimSpace(a.nameIn.Value())
		return a, nil
	}

	var cmd tea.Cmd
	if a.nameIn.Focused() {
		a.nameIn, cmd = a.nameIn.Update(msg)
	} else {
		a.amountIn, cmd = a.amountIn.Update(msg)
	}
	return a, cmd
}

func (a App) updateSalary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeBrowse
		a.salaryIn.Blur()
		return a, nil

	case "enter":
		if err := a.led.SetSalary(a.salaryIn.Value()); err != nil {
			a.status = "Save failed: " + err.Error()
			return a, nil
		}
		a.mode = modeBrowse
		a.salaryIn.Blur()
		a.status = "Salary updated"
		return a, nil
	}

	var cmd tea.Cmd
	a.salaryIn, cmd = a.salaryIn.Update(msg)
	return a, cmd
}

var (
	tuiTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(cli.ColorText)
	tuiLabelStyle  = lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
	tuiValueStyle  = lipgloss.NewStyle().Foreground(cli.ColorText)
	tuiAccentStyle = lipgloss.NewStyle().Foreground(cli.ColorAccent)
	tuiWarnStyle   = lipgloss.NewStyle().Bold(true).Foreground(cli.ColorOrange)
	tuiCursorStyle = lipgloss.NewStyle().Foreground(cli.ColorAccent).Bold(true)
	tuiDimStyle    = lipgloss.NewStyle().Foreground(cli.ColorTextDim)
)

func (a App) View() string {
	snap := render.Project(a.led.Budget())

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(tuiTitleStyle.Render(fmt.Sprintf("  CASHFLOW  %s", snap.Currency)))
	b.WriteString("\n\n")

	b.WriteString(tuiLabelStyle.Render("  Salary  "))
	b.WriteString(tuiValueStyle.Render(snap.SalaryText))
	b.WriteString("\n\n")

	if len(snap.Rows) == 0 {
		b.WriteString(tuiDimStyle.Render("  No expenses yet. Press a to add one."))
		b.WriteString("\n")
	}
	for i, r := range snap.Rows {
		cursor := "  "
		style := tuiValueStyle
		if i == a.cursor && a.mode == modeBrowse {
			cursor = "> "
			style = tuiCursorStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("  %s%-20s %12s", cursor, r.Name, r.Amount)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(tuiLabelStyle.Render("  Balance "))
	if snap.LowBalance {
		b.WriteString(tuiWarnStyle.Render(snap.BalanceText + "  ⚠ low balance"))
	} else {
		b.WriteString(tuiValueStyle.Render(snap.BalanceText))
	}
	b.WriteString("\n\n")

	b.WriteString("  " + strings.ReplaceAll(a.chart.Draw(snap.ChartExpenses, snap.ChartRemaining), "\n", "\n  "))
	b.WriteString("\n\n")

	switch a.mode {
	case modeAdd:
		b.WriteString("  New expense: " + a.nameIn.View() + "  " + a.amountIn.View())
		b.WriteString(tuiDimStyle.Render("   enter save · esc cancel"))
		b.WriteString("\n")
	case modeSalary:
		b.WriteString("  New salary: " + a.salaryIn.View())
		b.WriteString(tuiDimStyle.Render("   enter save · esc cancel"))
		b.WriteString("\n")
	default:
		target := a.cfg.General.Currencies[a.targetIdx]
		if a.converting {
			b.WriteString("  " + a.spin.View() + tuiAccentStyle.Render(" converting to "+target+"..."))
		} else {
			b.WriteString(tuiLabelStyle.Render("  Convert to ") + tuiAccentStyle.Render(target) +
				tuiDimStyle.Render("  (c to change, enter to convert)"))
		}
		b.WriteString("\n")
	}

	if a.status != "" {
		b.WriteString("\n" + tuiLabelStyle.Render("  "+a.status) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(tuiDimStyle.Render("  a add · s salary · x delete · c/enter convert · r report · q quit"))
	b.WriteString("\n")

	return b.String()
}
