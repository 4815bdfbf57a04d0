// Package tsv reads header-mapped tab-separated files.
//
// Quoting is disabled: fields are the literal text between tabs and
// quote characters carry no meaning. Missing values are empty strings,
// never a null sentinel.
package tsv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmpty indicates the input had no header row.
var ErrEmpty = errors.New("tsv: empty input")

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024

// Table is a parsed tab-separated file with named columns.
type Table struct {
	columns map[string]int
	rows    [][]string
}

// Parse reads a table from r. The first line is the header; every later
// non-blank line must have exactly as many fields as the header.
func Parse(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("tsv: read header: %w", err)
		}
		return nil, ErrEmpty
	}

	header := strings.Split(trimCR(scanner.Text()), "\t")
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	t := &Table{columns: columns}
	line := 1
	for scanner.Scan() {
		line++
		text := trimCR(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) != len(header) {
			return nil, fmt.Errorf("tsv: line %d: %d fields, header has %d", line, len(fields), len(header))
		}
		t.rows = append(t.rows, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tsv: read rows: %w", err)
	}

	return t, nil
}

// ParseFile reads a table from the file at path.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsv: open: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// HasColumn reports whether the header contains the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Field returns the value in the named column of row i, or the empty
// string when the column does not exist.
func (t *Table) Field(i int, column string) string {
	idx, ok := t.columns[column]
	if !ok {
		return ""
	}
	return t.rows[i][idx]
}

// trimCR strips the trailing carriage return left by CRLF files.
func trimCR(s string) string {
	return strings.TrimSuffix(s, "\r")
}
