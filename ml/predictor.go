package ml

import (
	"errors"
	"fmt"
	"math"
)

// ErrPrediction wraps any failure to encode or score an input. Handlers map
// it to a 500 without taking the service down.
var ErrPrediction = errors.New("prediction failed")

const HighRisk = "High Risk"
const LowRisk = "Low Risk"

// Result is one scored input.
type Result struct {
	Prediction string
	Confidence float64
}

// Predictor holds the model and preprocessor artifacts. Both are loaded once
// at startup and never mutated, so a single Predictor is shared across all
// request handlers.
type Predictor struct {
	model *Model
	prep  *Preprocessor
}

func LoadPredictor(modelPath, preprocessorPath string) (*Predictor, error) {
	model, err := LoadModel(modelPath)
	if err != nil {
		return nil, err
	}
	prep, err := LoadPreprocessor(preprocessorPath)
	if err != nil {
		return nil, err
	}
	if model.InputDim() != prep.Dim() {
		return nil, fmt.Errorf("model expects %d inputs but preprocessor produces %d",
			model.InputDim(), prep.Dim())
	}
	return &Predictor{model: model, prep: prep}, nil
}

// Analyze encodes the named inputs, scores them, and classifies the
// probability: p >= 0.5 is High Risk, and confidence is the probability of
// the predicted class, rounded to 4 decimals (always in [0.5, 1.0]).
func (p *Predictor) Analyze(input map[string]interface{}) (*Result, error) {
	vec, err := p.prep.Transform(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrediction, err)
	}

	proba := p.model.Predict(vec)

	prediction := LowRisk
	confidence := 1 - proba
	if proba >= 0.5 {
		prediction = HighRisk
		confidence = proba
	}

	return &Result{
		Prediction: prediction,
		Confidence: math.Round(confidence*10000) / 10000,
	}, nil
}
