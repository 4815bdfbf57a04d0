package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	nereval "github.com/nlp4bia-bsc/Generic-NER-evaluation-TSV-BRAT"
)

func main() {
	entities := flag.String("entities", "", "Comma-separated labels to restrict the check to")

	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: ner-check [OPTIONS] FILE.tsv")
		flag.PrintDefaults()
		os.Exit(1)
	}
	path := flag.Arg(0)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	opts := []nereval.Option{nereval.WithLogger(logger)}
	if *entities != "" {
		opts = append(opts, nereval.WithEntities(strings.Split(*entities, ",")...))
	}

	set, err := nereval.Load(path, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("File: %s\n", path)
	fmt.Printf("Records: %d\n", set.Len())
	fmt.Printf("Documents: %d\n", len(set.Documents()))
	labels := set.Labels()
	fmt.Printf("Labels (%d):\n", len(labels))
	for _, label := range labels {
		fmt.Printf("  %s\n", label)
	}
	if n := set.DuplicatesRemoved(); n > 0 {
		fmt.Printf("Duplicates removed: %d\n", n)
	}
}
