// Package report renders evaluation results for humans: the summary
// lines, per-document and per-label tables, and an HTML chart.
package report

import (
	"fmt"
	"io"
	"math"
	"sort"

	nereval "github.com/nlp4bia-bsc/Generic-NER-evaluation-TSV-BRAT"
)

// WriteSummary prints the micro-averaged metrics in the stable format
// consumed by downstream scripts.
func WriteSummary(w io.Writer, res nereval.Result) {
	fmt.Fprintf(w, "Micro-average Precision: %g\n", res.Micro.Precision)
	fmt.Fprintf(w, "Micro-average Recall: %g\n", res.Micro.Recall)
	fmt.Fprintf(w, "Micro-average F1 score: %g\n", res.Micro.F1)
}

// WritePerDocument prints one row per gold document sorted by document
// id, followed by the macro averages. Undefined metrics render as "-".
func WritePerDocument(w io.Writer, res nereval.Result) {
	docs := make([]string, 0, len(res.PerDocument))
	for doc := range res.PerDocument {
		docs = append(docs, doc)
	}
	sort.Strings(docs)

	fmt.Fprintf(w, "%-30s %6s %6s %6s %8s %8s %8s\n", "Document", "TP", "Pred", "Gold", "P", "R", "F1")
	for _, doc := range docs {
		m := res.PerDocument[doc]
		fmt.Fprintf(w, "%-30s %6d %6d %6d %8s %8s %8s\n",
			doc, m.TruePositives, m.PredictedPositives, m.GoldPositives,
			cell(m.Precision), cell(m.Recall), cell(m.F1))
	}
	fmt.Fprintf(w, "%-30s %6s %6s %6s %8s %8s %8s\n", "macro-average", "", "", "",
		cell(res.Macro.Precision), cell(res.Macro.Recall), cell(res.Macro.F1))
}

// WritePerLabel prints one row per gold label.
func WritePerLabel(w io.Writer, rows []nereval.LabelMetrics) {
	fmt.Fprintf(w, "%-20s %6s %6s %6s %8s %8s %8s\n", "Label", "TP", "Pred", "Gold", "P", "R", "F1")
	for _, lm := range rows {
		fmt.Fprintf(w, "%-20s %6d %6d %6d %8s %8s %8s\n",
			lm.Label, lm.TruePositives, lm.PredictedPositives, lm.GoldPositives,
			cell(lm.Precision), cell(lm.Recall), cell(lm.F1))
	}
}

// cell formats one metric value, showing NaN as a dash.
func cell(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.4f", v)
}
