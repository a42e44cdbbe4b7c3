package ml

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// writeArtifacts writes a preprocessor covering all 11 features and a
// single-layer model whose output is sigmoid(bias) regardless of input, so
// tests can pin the probability exactly.
func writeArtifacts(t *testing.T, bias float64) (modelPath, prepPath string) {
	t.Helper()
	dir := t.TempDir()

	prep := Preprocessor{
		Numeric: map[string]NumericParams{
			"Age":         {Mean: 53.5, Scale: 9.4},
			"RestingBP":   {Mean: 132.4, Scale: 18.5},
			"Cholesterol": {Mean: 198.8, Scale: 109.4},
			"MaxHR":       {Mean: 136.8, Scale: 25.5},
			"Oldpeak":     {Mean: 0.89, Scale: 1.07},
			"FastingBS":   {Mean: 0.23, Scale: 0.42},
		},
		Categorical: map[string][]string{
			"Sex":            {"F", "M"},
			"ChestPainType":  {"ATA", "NAP", "ASY", "TA"},
			"RestingECG":     {"Normal", "ST", "LVH"},
			"ExerciseAngina": {"N", "Y"},
			"ST_Slope":       {"Up", "Flat", "Down"},
		},
	}

	weights := make([][]float64, 1)
	weights[0] = make([]float64, prep.Dim())
	model := Model{Layers: []Layer{{
		Weights:    weights,
		Biases:     []float64{bias},
		Activation: "sigmoid",
	}}}

	modelPath = filepath.Join(dir, "model.json")
	prepPath = filepath.Join(dir, "preprocessor.json")
	writeJSONFile(t, modelPath, model)
	writeJSONFile(t, prepPath, prep)
	return modelPath, prepPath
}

func writeJSONFile(t *testing.T, path string, v interface{}) {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %s: %v", path, err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func validInput() map[string]interface{} {
	return map[string]interface{}{
		"Age":            float64(54),
		"RestingBP":      float64(140),
		"Cholesterol":    float64(239),
		"MaxHR":          float64(160),
		"Oldpeak":        1.2,
		"Sex":            "M",
		"ChestPainType":  "ASY",
		"RestingECG":     "Normal",
		"ExerciseAngina": "Y",
		"ST_Slope":       "Flat",
		"FastingBS":      float64(0),
	}
}

func TestAnalyzeBoundaryIsHighRisk(t *testing.T) {
	// sigmoid(0) = 0.5 exactly: the boundary must classify as High Risk
	p, err := LoadPredictor(writeArtifacts(t, 0))
	if err != nil {
		t.Fatalf("LoadPredictor: %v", err)
	}

	res, err := p.Analyze(validInput())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Prediction != HighRisk {
		t.Errorf("p=0.5: got %q, want %q", res.Prediction, HighRisk)
	}
	if res.Confidence != 0.5 {
		t.Errorf("p=0.5: confidence = %v, want 0.5", res.Confidence)
	}
}

func TestAnalyzeConfidenceBounds(t *testing.T) {
	// Sweep biases so sigmoid covers both classes and the extremes
	for _, bias := range []float64{-10, -2, -0.1, 0, 0.1, 2, 10} {
		p, err := LoadPredictor(writeArtifacts(t, bias))
		if err != nil {
			t.Fatalf("bias %v: LoadPredictor: %v", bias, err)
		}
		res, err := p.Analyze(validInput())
		if err != nil {
			t.Fatalf("bias %v: Analyze: %v", bias, err)
		}
		if res.Confidence < 0.5 || res.Confidence > 1.0 {
			t.Errorf("bias %v: confidence %v out of [0.5, 1.0]", bias, res.Confidence)
		}
		wantLabel := LowRisk
		if bias >= 0 {
			wantLabel = HighRisk
		}
		if res.Prediction != wantLabel {
			t.Errorf("bias %v: label %q, want %q", bias, res.Prediction, wantLabel)
		}
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	p, err := LoadPredictor(writeArtifacts(t, 1.3))
	if err != nil {
		t.Fatalf("LoadPredictor: %v", err)
	}

	first, err := p.Analyze(validInput())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	for i := 0; i < 5; i++ {
		res, err := p.Analyze(validInput())
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if res.Prediction != first.Prediction || res.Confidence != first.Confidence {
			t.Fatalf("run %d differs: got (%q, %v), want (%q, %v)",
				i, res.Prediction, res.Confidence, first.Prediction, first.Confidence)
		}
	}
}

func TestAnalyzeConfidenceRounding(t *testing.T) {
	p, err := LoadPredictor(writeArtifacts(t, 0.37))
	if err != nil {
		t.Fatalf("LoadPredictor: %v", err)
	}
	res, err := p.Analyze(validInput())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	scaled := res.Confidence * 10000
	if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
		t.Errorf("confidence %v not rounded to 4 decimals", res.Confidence)
	}
}

func TestAnalyzeBadInput(t *testing.T) {
	p, err := LoadPredictor(writeArtifacts(t, 0))
	if err != nil {
		t.Fatalf("LoadPredictor: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(map[string]interface{})
	}{
		{"missing key", func(in map[string]interface{}) { delete(in, "Age") }},
		{"unknown category", func(in map[string]interface{}) { in["Sex"] = "X" }},
		{"non-numeric value", func(in map[string]interface{}) { in["Age"] = "old" }},
		{"category as number", func(in map[string]interface{}) { in["ST_Slope"] = float64(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)
			if _, err := p.Analyze(in); err == nil {
				t.Errorf("expected error")
			}
		})
	}
}

func TestLoadPredictorDimMismatch(t *testing.T) {
	modelPath, prepPath := writeArtifacts(t, 0)

	// Model trained on a different input width must be rejected at load
	bad := Model{Layers: []Layer{{
		Weights:    [][]float64{{0.1, 0.2, 0.3}},
		Biases:     []float64{0},
		Activation: "sigmoid",
	}}}
	badPath := filepath.Join(t.TempDir(), "bad_model.json")
	writeJSONFile(t, badPath, bad)

	if _, err := LoadPredictor(badPath, prepPath); err == nil {
		t.Errorf("expected dim mismatch error")
	}
	if _, err := LoadPredictor(modelPath, filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("expected missing artifact error")
	}
}

func TestModelForwardPass(t *testing.T) {
	// Hand-checked two-layer net: relu(1*2 + (-1)) = 1, sigmoid(2*1) ~ 0.8808
	m := &Model{Layers: []Layer{
		{Weights: [][]float64{{1}}, Biases: []float64{-1}, Activation: "relu"},
		{Weights: [][]float64{{2}}, Biases: []float64{0}, Activation: "sigmoid"},
	}}
	got := m.Predict([]float64{2})
	if got < 0.8807 || got > 0.8809 {
		t.Errorf("Predict = %v, want ~0.8808", got)
	}

	// relu clamps negatives: input 0.5 -> relu(-0.5) = 0 -> sigmoid(0) = 0.5
	if got := m.Predict([]float64{0.5}); got != 0.5 {
		t.Errorf("Predict = %v, want 0.5", got)
	}
}

func TestBaselineCoversFeatureOrder(t *testing.T) {
	if len(FeatureOrder) != 11 {
		t.Fatalf("FeatureOrder has %d features, want 11", len(FeatureOrder))
	}
	for _, name := range FeatureOrder {
		if _, ok := HealthyBaseline[name]; !ok {
			t.Errorf("baseline missing %q", name)
		}
	}
	if len(HealthyBaseline) != len(FeatureOrder) {
		t.Errorf("baseline has %d entries, want %d", len(HealthyBaseline), len(FeatureOrder))
	}
}
