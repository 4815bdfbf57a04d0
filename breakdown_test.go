package nereval

import "testing"

func TestEvaluateByLabel(t *testing.T) {
	gold := newSet(t, []Record{
		{Document: "doc1", Start: "0", End: "5", Label: "DISEASE"},
		{Document: "doc1", Start: "10", End: "15", Label: "SYMPTOM"},
		{Document: "doc2", Start: "3", End: "9", Label: "SYMPTOM"},
	})
	pred := newSet(t, []Record{
		{Document: "doc1", Start: "0", End: "5", Label: "DISEASE"},
		{Document: "doc1", Start: "20", End: "25", Label: "SYMPTOM"},
		{Document: "doc1", Start: "30", End: "35", Label: "CHEMICAL"},
	})

	rows := EvaluateByLabel(gold, pred)

	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}

	// Sorted by label: DISEASE before SYMPTOM; CHEMICAL never occurs in
	// the gold standard and is not reported.
	disease := rows[0]
	if disease.Label != "DISEASE" {
		t.Fatalf("rows[0].Label = %q, want DISEASE", disease.Label)
	}
	if disease.TruePositives != 1 || disease.PredictedPositives != 1 || disease.GoldPositives != 1 {
		t.Errorf("DISEASE counts = %d/%d/%d, want 1/1/1",
			disease.TruePositives, disease.PredictedPositives, disease.GoldPositives)
	}
	if !almostEqual(disease.F1, 1.0) {
		t.Errorf("DISEASE F1 = %v, want 1.0", disease.F1)
	}

	symptom := rows[1]
	if symptom.Label != "SYMPTOM" {
		t.Fatalf("rows[1].Label = %q, want SYMPTOM", symptom.Label)
	}
	if symptom.TruePositives != 0 || symptom.PredictedPositives != 1 || symptom.GoldPositives != 2 {
		t.Errorf("SYMPTOM counts = %d/%d/%d, want 0/1/2",
			symptom.TruePositives, symptom.PredictedPositives, symptom.GoldPositives)
	}
	if !almostEqual(symptom.Precision, 0) || !almostEqual(symptom.Recall, 0) || !almostEqual(symptom.F1, 0) {
		t.Errorf("SYMPTOM metrics = %v/%v/%v, want 0/0/0",
			symptom.Precision, symptom.Recall, symptom.F1)
	}
}

func TestEvaluateByLabel_EmptyGold(t *testing.T) {
	rows := EvaluateByLabel(newSet(t, nil), newSet(t, []Record{
		{Document: "doc1", Start: "0", End: "5", Label: "DISEASE"},
	}))
	if len(rows) != 0 {
		t.Errorf("len(rows) = %d, want 0", len(rows))
	}
}
