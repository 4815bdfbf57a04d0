package nereval

import (
	"log/slog"
	"sort"
)

// spanKeySep separates the start and end offsets in a span key.
const spanKeySep = " "

// Record is one labeled span occurrence in a document (a clinical case).
// Start and End are kept as strings so that numeric formatting
// differences between gold and prediction files cannot break matching.
type Record struct {
	Document string
	Start    string
	End      string
	Label    string
	Text     string // surface text, carried for display only
}

// SpanKey returns the offset pair used for matching: "start end".
func (r Record) SpanKey() string {
	return r.Start + spanKeySep + r.End
}

// tripleKey identifies a record for deduplication and true-positive
// matching.
type tripleKey struct {
	doc, label, span string
}

func (r Record) triple() tripleKey {
	return tripleKey{doc: r.Document, label: r.Label, span: r.SpanKey()}
}

// RecordSet is a normalized collection of records from one source, gold
// standard or predictions. No two records share the same
// (document, label, span key) triple. A RecordSet is immutable once
// created; callers must not modify the slice returned by Records.
type RecordSet struct {
	records []Record
	dropped int
}

// NewRecordSet normalizes raw records into a RecordSet. Duplicate
// (document, label, span key) rows are removed, keeping the first
// occurrence, and a single warning is logged with the number dropped.
// Normalization is idempotent. A nil logger falls back to slog.Default().
func NewRecordSet(records []Record, logger *slog.Logger) *RecordSet {
	if logger == nil {
		logger = slog.Default()
	}

	seen := make(map[tripleKey]struct{}, len(records))
	kept := make([]Record, 0, len(records))
	for _, r := range records {
		k := r.triple()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		kept = append(kept, r)
	}

	dropped := len(records) - len(kept)
	if dropped > 0 {
		logger.Warn("duplicated entries found and removed", "count", dropped)
	}

	return &RecordSet{records: kept, dropped: dropped}
}

// Len returns the number of records.
func (s *RecordSet) Len() int { return len(s.records) }

// Records returns the normalized records in input order.
func (s *RecordSet) Records() []Record { return s.records }

// DuplicatesRemoved reports how many duplicate rows normalization dropped.
func (s *RecordSet) DuplicatesRemoved() int { return s.dropped }

// Documents returns the distinct document ids in first-seen order.
func (s *RecordSet) Documents() []string {
	seen := make(map[string]struct{})
	var docs []string
	for _, r := range s.records {
		if _, ok := seen[r.Document]; ok {
			continue
		}
		seen[r.Document] = struct{}{}
		docs = append(docs, r.Document)
	}
	return docs
}

// Labels returns the distinct labels in sorted order.
func (s *RecordSet) Labels() []string {
	seen := make(map[string]struct{})
	var labels []string
	for _, r := range s.records {
		if _, ok := seen[r.Label]; ok {
			continue
		}
		seen[r.Label] = struct{}{}
		labels = append(labels, r.Label)
	}
	sort.Strings(labels)
	return labels
}

// restrict returns the subset of records carrying the given label. The
// result satisfies the uniqueness invariant because the receiver does.
func (s *RecordSet) restrict(label string) *RecordSet {
	sub := &RecordSet{}
	for _, r := range s.records {
		if r.Label == label {
			sub.records = append(sub.records, r)
		}
	}
	return sub
}
