package plot

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/CodeStranger-Fred/inventory/store"
)

// History is the read-only view of one run that the charts are drawn from.
type History struct {
	Price     []float64
	Stock     []float64
	Purchases []int
}

func HistoryOf(env *store.SmartphoneEnvironment, agent *store.SmartphoneAgent) History {
	return History{
		Price:     env.PriceHistory(),
		Stock:     env.StockHistory(),
		Purchases: agent.BuyHistory(),
	}
}

func timeAxis(n int) []string {
	var steps []string
	for i := 0; i < n; i++ {
		steps = append(steps, fmt.Sprintf("%d", i))
	}
	return steps
}

func lineItems(values []float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(values))
	for _, v := range values {
		items = append(items, opts.LineData{Value: v})
	}
	return items
}

func newLine(title, yName string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	)
	return line
}

// RenderHistory draws the price series, and the stock level with the
// purchases overlaid as bars.
func RenderHistory(w io.Writer, h History) error {
	if len(h.Price) == 0 || len(h.Stock) == 0 {
		return fmt.Errorf("plot: empty history")
	}
	axis := timeAxis(len(h.Price))

	price := newLine("Smartphone price", "Price")
	price.SetXAxis(axis).
		AddSeries("Price", lineItems(h.Price),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "blue"}))

	stock := newLine("Stock and purchases", "Stock / Purchases")
	stock.SetXAxis(axis).
		AddSeries("Stock Level", lineItems(h.Stock),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "blue"}))

	bars := make([]opts.BarData, 0, len(h.Purchases))
	for _, b := range h.Purchases {
		bars = append(bars, opts.BarData{Value: b})
	}
	purchased := charts.NewBar()
	purchased.SetXAxis(axis).
		AddSeries("Purchased", bars,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "orange"}))
	stock.Overlap(purchased)

	page := components.NewPage()
	page.AddCharts(
		price,
		stock,
	)
	return page.Render(w)
}

// RenderBatch draws the per-step means of a repeated run.
func RenderBatch(w io.Writer, res store.BatchResult) error {
	if len(res.MeanPrice) == 0 {
		return fmt.Errorf("plot: empty batch")
	}
	axis := timeAxis(len(res.MeanPrice))

	price := newLine(fmt.Sprintf("Mean price over %d runs", res.Runs), "Price")
	price.SetXAxis(axis).AddSeries("Mean Price", lineItems(res.MeanPrice))

	stock := newLine(fmt.Sprintf("Mean stock over %d runs", res.Runs), "Stock")
	stock.SetXAxis(axis).AddSeries("Mean Stock", lineItems(res.MeanStock))

	page := components.NewPage()
	page.AddCharts(price, stock)
	return page.Render(w)
}

// WriteFile renders into dir/name, creating dir if needed, and returns the
// path written.
func WriteFile(dir, name string, render func(io.Writer) error) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := render(f); err != nil {
		f.Close()
		return "", fmt.Errorf("render %s: %w", path, err)
	}
	return path, f.Close()
}

// Serve exposes the chart directory over HTTP until the server fails.
func Serve(addr, dir string, logger *log.Logger) error {
	fs := http.FileServer(http.Dir(dir))
	logger.Info("serving charts", "addr", "http://"+addr, "dir", dir)
	return http.ListenAndServe(addr, fs)
}
