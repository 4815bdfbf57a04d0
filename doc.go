// Package nereval scores named-entity-recognition predictions against a
// gold standard, computing per-document and micro-averaged precision,
// recall and F1 over annotated text spans.
//
// # Quick Start
//
//	gold, err := nereval.Load("gold.tsv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pred, err := nereval.Load("predictions.tsv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res := nereval.Evaluate(gold, pred)
//	fmt.Printf("Micro F1: %.4f\n", res.Micro.F1)
//
// # Matching
//
// Matching is exact equality on the (document, span offsets, label)
// triple. Partial and overlapping span matches never count. Offsets are
// compared as strings so that numeric formatting differences between
// files cannot break matching.
//
// # Input Format
//
// Annotation files are tab-separated with a header row and one row per
// labeled span, carrying at least the columns filename, label,
// start_span, end_span and text. Column order is irrelevant and extra
// columns are ignored. Quoting is disabled: fields are literal text
// between tabs.
package nereval
