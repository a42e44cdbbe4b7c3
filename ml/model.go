package ml

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Layer is one dense layer: Weights[out][in], one bias per output unit.
type Layer struct {
	Weights    [][]float64 `json:"weights"`
	Biases     []float64   `json:"biases"`
	Activation string      `json:"activation"`
}

// Model is a feed-forward classifier exported from the training pipeline as
// JSON. The final layer must be a single sigmoid unit so Predict yields a
// probability in [0,1].
type Model struct {
	Layers []Layer `json:"layers"`
}

func LoadModel(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var m Model
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Model) validate() error {
	if len(m.Layers) == 0 {
		return fmt.Errorf("model artifact has no layers")
	}
	for i, l := range m.Layers {
		if len(l.Weights) == 0 || len(l.Weights) != len(l.Biases) {
			return fmt.Errorf("layer %d: weights/biases shape mismatch", i)
		}
		width := len(l.Weights[0])
		for _, row := range l.Weights {
			if len(row) != width {
				return fmt.Errorf("layer %d: ragged weight matrix", i)
			}
		}
		if i > 0 && width != len(m.Layers[i-1].Weights) {
			return fmt.Errorf("layer %d: input width %d does not match previous layer output %d",
				i, width, len(m.Layers[i-1].Weights))
		}
		switch l.Activation {
		case "relu", "sigmoid", "linear":
		default:
			return fmt.Errorf("layer %d: unsupported activation %q", i, l.Activation)
		}
	}
	last := m.Layers[len(m.Layers)-1]
	if len(last.Weights) != 1 || last.Activation != "sigmoid" {
		return fmt.Errorf("final layer must be a single sigmoid unit")
	}
	return nil
}

// InputDim returns the vector length the model expects.
func (m *Model) InputDim() int {
	return len(m.Layers[0].Weights[0])
}

// Predict runs the forward pass and returns the positive-class probability.
func (m *Model) Predict(x []float64) float64 {
	v := x
	for _, l := range m.Layers {
		next := make([]float64, len(l.Weights))
		for i, row := range l.Weights {
			sum := l.Biases[i]
			for j, w := range row {
				sum += w * v[j]
			}
			switch l.Activation {
			case "relu":
				if sum < 0 {
					sum = 0
				}
			case "sigmoid":
				sum = 1 / (1 + math.Exp(-sum))
			}
			next[i] = sum
		}
		v = next
	}
	return v[0]
}
