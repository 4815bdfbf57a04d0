package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	nereval "github.com/nlp4bia-bsc/Generic-NER-evaluation-TSV-BRAT"
)

// Chart renders a per-document bar chart of precision, recall and F1 as
// a standalone HTML page. Undefined values become missing bars rather
// than zeros so unpredicted documents stay visually distinct.
func Chart(w io.Writer, res nereval.Result, title string) error {
	docs := make([]string, 0, len(res.PerDocument))
	for doc := range res.PerDocument {
		docs = append(docs, doc)
	}
	sort.Strings(docs)

	series := func(pick func(nereval.DocumentMetrics) float64) []opts.BarData {
		data := make([]opts.BarData, 0, len(docs))
		for _, doc := range docs {
			v := pick(res.PerDocument[doc])
			if math.IsNaN(v) {
				data = append(data, opts.BarData{Value: "-"})
				continue
			}
			data = append(data, opts.BarData{Value: v})
		}
		return data
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "NER evaluation", Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("documents=%d", len(docs))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 1}),
	)
	bar.SetXAxis(docs)
	bar.AddSeries("precision", series(func(m nereval.DocumentMetrics) float64 { return m.Precision }))
	bar.AddSeries("recall", series(func(m nereval.DocumentMetrics) float64 { return m.Recall }))
	bar.AddSeries("f1", series(func(m nereval.DocumentMetrics) float64 { return m.F1 }))

	return bar.Render(w)
}

// ChartFile renders the per-document chart to the file at path.
func ChartFile(path string, res nereval.Result, title string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}

	if err := Chart(f, res, title); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
