// Package report prints a run to the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/logrusorgru/aurora"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/CodeStranger-Fred/inventory/store"
)

type Summary struct {
	Steps       int
	Units       int
	TotalSpent  float64
	FinalStock  float64
	MinStock    float64
	StockOuts   int
	MeanPrice   float64
	PriceStdDev float64
	MinPrice    float64
	MaxPrice    float64
}

func Summarize(env *store.SmartphoneEnvironment, agent *store.SmartphoneAgent) Summary {
	prices := env.PriceHistory()
	stocks := env.StockHistory()

	s := Summary{
		Steps:      env.Time(),
		Units:      agent.UnitsBought(),
		TotalSpent: agent.TotalSpent(),
		FinalStock: env.Stock(),
		MinStock:   floats.Min(stocks),
		MeanPrice:  stat.Mean(prices, nil),
		MinPrice:   floats.Min(prices),
		MaxPrice:   floats.Max(prices),
	}
	if len(prices) > 1 {
		s.PriceStdDev = stat.StdDev(prices, nil)
	}
	// the initial stock is not an outcome of a sales day
	for _, v := range stocks[1:] {
		if v == 0 {
			s.StockOuts++
		}
	}
	return s
}

var (
	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3B82F6")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Width(14)
)

func RenderSummary(s Summary) string {
	rows := [][2]string{
		{"Steps", fmt.Sprintf("%d", s.Steps)},
		{"Units bought", fmt.Sprintf("%d", s.Units)},
		{"Total spent", fmt.Sprintf("%.2f", s.TotalSpent)},
		{"Final stock", fmt.Sprintf("%.0f", s.FinalStock)},
		{"Min stock", fmt.Sprintf("%.0f", s.MinStock)},
		{"Stock-outs", fmt.Sprintf("%d", s.StockOuts)},
		{"Mean price", fmt.Sprintf("%.2f ± %.2f", s.MeanPrice, s.PriceStdDev)},
		{"Price range", fmt.Sprintf("%.2f .. %.2f", s.MinPrice, s.MaxPrice)},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Smartphone store"))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(r[0]))
		b.WriteString(r[1])
	}
	return panelStyle.Render(b.String())
}

func RenderBatch(res store.BatchResult) string {
	rows := [][2]string{
		{"Runs", fmt.Sprintf("%d", res.Runs)},
		{"Steps", fmt.Sprintf("%d", res.Steps)},
		{"Mean units", fmt.Sprintf("%.1f", res.MeanUnits)},
		{"Mean spent", fmt.Sprintf("%.2f ± %.2f", res.MeanSpent, res.StdDevSpent)},
		{"Final stock", fmt.Sprintf("%.1f", res.MeanStock[len(res.MeanStock)-1])},
		{"Final price", fmt.Sprintf("%.2f", res.MeanPrice[len(res.MeanPrice)-1])},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Smartphone store (batch)"))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(r[0]))
		b.WriteString(r[1])
	}
	return panelStyle.Render(b.String())
}

// Trace returns an observer that prints one coloured line per decision.
func Trace(w io.Writer) func(step int, p store.Percept, a store.Action) {
	return func(step int, p store.Percept, a store.Action) {
		stock := aurora.Blue(fmt.Sprintf("%4.0f", p.Stock))
		if p.Stock == 0 {
			stock = aurora.Red(fmt.Sprintf("%4.0f", p.Stock))
		}
		buy := aurora.White(fmt.Sprintf("%3d", a.Buy))
		if a.Buy > 0 {
			buy = aurora.Green(fmt.Sprintf("%3d", a.Buy))
		}
		fmt.Fprintf(w, "t=%-4d price %s stock %s | buy %s\n",
			step, aurora.Blue(fmt.Sprintf("%8.2f", p.Price)), stock, buy)
	}
}
