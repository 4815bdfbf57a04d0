package nereval

// LabelMetrics holds micro-averaged metrics for a single entity label.
type LabelMetrics struct {
	Label              string
	TruePositives      int
	PredictedPositives int
	GoldPositives      int
	Precision          float64
	Recall             float64
	F1                 float64
}

// EvaluateByLabel scores each label occurring in the gold standard
// separately, restricting both record sets to that label before
// counting. Predicted spans whose label never occurs in the gold
// standard are not reported. Results are sorted by label.
func EvaluateByLabel(gold, pred *RecordSet) []LabelMetrics {
	labels := gold.Labels()
	out := make([]LabelMetrics, 0, len(labels))
	for _, label := range labels {
		res := Evaluate(gold.restrict(label), pred.restrict(label))
		out = append(out, LabelMetrics{
			Label:              label,
			TruePositives:      res.Counts.TruePositives,
			PredictedPositives: res.Counts.PredictedPositives,
			GoldPositives:      res.Counts.GoldPositives,
			Precision:          res.Micro.Precision,
			Recall:             res.Micro.Recall,
			F1:                 res.Micro.F1,
		})
	}
	return out
}
