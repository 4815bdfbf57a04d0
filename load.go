package nereval

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nlp4bia-bsc/Generic-NER-evaluation-TSV-BRAT/internal/tsv"
)

// Column names required in input files.
const (
	colDocument = "filename"
	colLabel    = "label"
	colStart    = "start_span"
	colEnd      = "end_span"
	colText     = "text"
)

var requiredColumns = []string{colDocument, colLabel, colStart, colEnd, colText}

// Load reads a TSV annotation file into a normalized RecordSet.
//
// The file must have a header row carrying at least the required
// columns; extra columns are ignored and column order is irrelevant.
// When an entity filter is set via WithEntities, rows whose upper-cased
// label is outside the filter are dropped before normalization.
// Structural failures (missing file, missing column, ragged row) return
// an error matching ErrMalformedInput.
func Load(path string, opts ...Option) (*RecordSet, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMalformedInput, path)
		}
		return nil, fmt.Errorf("checking input file: %w", err)
	}

	table, err := tsv.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedInput, path, err)
	}

	for _, col := range requiredColumns {
		if !table.HasColumn(col) {
			return nil, fmt.Errorf("%w: %w: %s: %q", ErrMalformedInput, ErrMissingColumn, path, col)
		}
	}

	records := make([]Record, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		r := Record{
			Document: table.Field(i, colDocument),
			Start:    table.Field(i, colStart),
			End:      table.Field(i, colEnd),
			Label:    table.Field(i, colLabel),
			Text:     table.Field(i, colText),
		}
		if cfg.entities != nil {
			if _, ok := cfg.entities[strings.ToUpper(r.Label)]; !ok {
				continue
			}
		}
		records = append(records, r)
	}

	return NewRecordSet(records, cfg.logger), nil
}
