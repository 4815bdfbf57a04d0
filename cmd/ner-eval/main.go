package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	nereval "github.com/nlp4bia-bsc/Generic-NER-evaluation-TSV-BRAT"
	"github.com/nlp4bia-bsc/Generic-NER-evaluation-TSV-BRAT/internal/config"
	"github.com/nlp4bia-bsc/Generic-NER-evaluation-TSV-BRAT/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	var (
		goldPath  = flag.String("gold_standard", "", "Path to the gold standard TSV file (required)")
		predPath  = flag.String("predictions", "", "Path to the predictions TSV file (required)")
		entities  = flag.String("entities", strings.Join(cfg.Entities, ","), "Comma-separated labels to restrict evaluation to")
		perDoc    = flag.Bool("per-doc", false, "Print per-document metrics")
		perLabel  = flag.Bool("per-label", false, "Print per-label metrics")
		chartPath = flag.String("chart", cfg.ChartPath, "Write an HTML chart of per-document metrics to this path")
		logLevel  = flag.String("log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	)
	flag.Parse()

	if *goldPath == "" || *predPath == "" {
		fmt.Fprintln(os.Stderr, "error: -gold_standard and -predictions required")
		flag.Usage()
		os.Exit(1)
	}

	logger := newLogger(*logLevel)

	opts := []nereval.Option{nereval.WithLogger(logger)}
	if *entities != "" {
		opts = append(opts, nereval.WithEntities(strings.Split(*entities, ",")...))
	}

	gold, err := nereval.Load(*goldPath, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading gold standard: %v\n", err)
		os.Exit(1)
	}
	pred, err := nereval.Load(*predPath, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading predictions: %v\n", err)
		os.Exit(1)
	}

	res := nereval.Evaluate(gold, pred)
	report.WriteSummary(os.Stdout, res)

	if *perDoc {
		fmt.Println()
		report.WritePerDocument(os.Stdout, res)
	}
	if *perLabel {
		fmt.Println()
		report.WritePerLabel(os.Stdout, nereval.EvaluateByLabel(gold, pred))
	}
	if *chartPath != "" {
		if err := report.ChartFile(*chartPath, res, "NER evaluation"); err != nil {
			fmt.Fprintf(os.Stderr, "error writing chart: %v\n", err)
			os.Exit(1)
		}
	}
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
