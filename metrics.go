package nereval

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// pairKey identifies a distinct (document, span key) pair. Labels are
// ignored when counting predicted and gold positives.
type pairKey struct {
	doc, span string
}

// Positives holds raw correctness counts for one gold/prediction pair.
type Positives struct {
	TruePositives       int
	TruePositivesPerDoc map[string]int
	PredictedPositives  int
	PredictedPerDoc     map[string]int
	GoldPositives       int
	GoldPerDoc          map[string]int
}

// CountPositives computes true, predicted and gold positive counts in
// aggregate and per document.
//
// Predicted and gold positives count distinct (document, span key)
// pairs. A true positive is a gold record whose (document, span key,
// label) triple also appears in the predictions; since gold records are
// unique per triple, each lookup hit is exactly one matched pair of
// rows. Gold documents with no predictions at all get an explicit zero
// entry in TruePositivesPerDoc so they still weigh on recall.
func CountPositives(gold, pred *RecordSet) Positives {
	p := Positives{
		TruePositivesPerDoc: make(map[string]int),
		PredictedPerDoc:     make(map[string]int),
		GoldPerDoc:          make(map[string]int),
	}

	predPairs := make(map[pairKey]struct{}, pred.Len())
	predTriples := make(map[tripleKey]struct{}, pred.Len())
	predDocs := make(map[string]struct{})
	for _, r := range pred.records {
		predDocs[r.Document] = struct{}{}
		predTriples[r.triple()] = struct{}{}

		pk := pairKey{doc: r.Document, span: r.SpanKey()}
		if _, ok := predPairs[pk]; ok {
			continue
		}
		predPairs[pk] = struct{}{}
		p.PredictedPerDoc[r.Document]++
		p.PredictedPositives++
	}

	goldPairs := make(map[pairKey]struct{}, gold.Len())
	for _, r := range gold.records {
		pk := pairKey{doc: r.Document, span: r.SpanKey()}
		if _, ok := goldPairs[pk]; ok {
			continue
		}
		goldPairs[pk] = struct{}{}
		p.GoldPerDoc[r.Document]++
		p.GoldPositives++
	}

	for _, r := range gold.records {
		if _, ok := predTriples[r.triple()]; ok {
			p.TruePositivesPerDoc[r.Document]++
			p.TruePositives++
		}
	}

	for doc := range p.GoldPerDoc {
		if _, ok := predDocs[doc]; !ok {
			p.TruePositivesPerDoc[doc] = 0
		}
	}

	return p
}

// DocumentMetrics holds counts and derived metrics for one document.
type DocumentMetrics struct {
	TruePositives      int
	PredictedPositives int
	GoldPositives      int
	Precision          float64
	Recall             float64
	F1                 float64
}

// Summary is one precision/recall/F1 triple.
type Summary struct {
	Precision float64
	Recall    float64
	F1        float64
}

// Result is the full output of an evaluation.
type Result struct {
	Counts      Positives
	PerDocument map[string]DocumentMetrics // keyed by gold document id
	Micro       Summary
	Macro       Summary // per-document means, NaN entries skipped
}

// Evaluate scores predictions against the gold standard. It is a pure
// function of its inputs; record order never affects the result.
//
// Per-document metrics are keyed by gold document ids. Documents that
// appear only in the predictions contribute to the micro precision
// denominator but are excluded from per-document precision. A document
// with no predictions has Precision and F1 of NaN rather than zero, so
// callers can tell "nothing predicted" apart from "everything predicted
// was wrong"; micro averages are zero-guarded instead.
func Evaluate(gold, pred *RecordSet) Result {
	counts := CountPositives(gold, pred)

	perDoc := make(map[string]DocumentMetrics, len(counts.GoldPerDoc))
	for doc, goldPos := range counts.GoldPerDoc {
		tp := counts.TruePositivesPerDoc[doc]
		predPos := counts.PredictedPerDoc[doc]

		m := DocumentMetrics{
			TruePositives:      tp,
			PredictedPositives: predPos,
			GoldPositives:      goldPos,
			Precision:          math.NaN(),
			Recall:             math.NaN(),
			F1:                 math.NaN(),
		}
		if predPos > 0 {
			m.Precision = float64(tp) / float64(predPos)
		}
		if goldPos > 0 {
			m.Recall = float64(tp) / float64(goldPos)
		}
		if m.Precision+m.Recall > 0 {
			// NaN in either operand keeps F1 NaN, as does P+R == 0.
			m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
		perDoc[doc] = m
	}

	var micro Summary
	if counts.PredictedPositives > 0 {
		micro.Precision = float64(counts.TruePositives) / float64(counts.PredictedPositives)
	}
	if counts.GoldPositives > 0 {
		micro.Recall = float64(counts.TruePositives) / float64(counts.GoldPositives)
	}
	if micro.Precision+micro.Recall > 0 {
		micro.F1 = 2 * micro.Precision * micro.Recall / (micro.Precision + micro.Recall)
	}

	return Result{
		Counts:      counts,
		PerDocument: perDoc,
		Micro:       micro,
		Macro:       macroAverage(perDoc),
	}
}

// macroAverage means the per-document series, skipping NaN entries. An
// all-NaN series yields NaN.
func macroAverage(perDoc map[string]DocumentMetrics) Summary {
	var ps, rs, f1s []float64
	for _, m := range perDoc {
		if !math.IsNaN(m.Precision) {
			ps = append(ps, m.Precision)
		}
		if !math.IsNaN(m.Recall) {
			rs = append(rs, m.Recall)
		}
		if !math.IsNaN(m.F1) {
			f1s = append(f1s, m.F1)
		}
	}
	return Summary{Precision: mean(ps), Recall: mean(rs), F1: mean(f1s)}
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stat.Mean(xs, nil)
}
