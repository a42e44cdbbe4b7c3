package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

// NumericParams holds the standardization parameters for one numeric column.
type NumericParams struct {
	Mean  float64 `json:"mean"`
	Scale float64 `json:"scale"`
}

// Preprocessor encodes a named feature map into the numeric vector the model
// expects: numeric columns are standardized, categorical columns are one-hot
// encoded over their trained category lists. The artifact is exported from
// the training pipeline as JSON and loaded once at startup.
type Preprocessor struct {
	Numeric     map[string]NumericParams `json:"numeric"`
	Categorical map[string][]string      `json:"categorical"`
}

func LoadPreprocessor(path string) (*Preprocessor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preprocessor artifact: %w", err)
	}
	var p Preprocessor
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode preprocessor artifact: %w", err)
	}
	for _, name := range FeatureOrder {
		_, num := p.Numeric[name]
		_, cat := p.Categorical[name]
		if num && cat {
			return nil, fmt.Errorf("preprocessor artifact lists feature %q as both numeric and categorical", name)
		}
		if !num && !cat {
			return nil, fmt.Errorf("preprocessor artifact missing feature %q", name)
		}
	}
	if extra := len(p.Numeric) + len(p.Categorical) - len(FeatureOrder); extra > 0 {
		return nil, fmt.Errorf("preprocessor artifact has %d entries outside the feature set", extra)
	}
	return &p, nil
}

// Dim returns the length of the encoded vector.
func (p *Preprocessor) Dim() int {
	n := len(p.Numeric)
	for _, cats := range p.Categorical {
		n += len(cats)
	}
	return n
}

// Transform reorders the named inputs into FeatureOrder and encodes them.
// Missing keys, unknown categories, and non-numeric values for numeric
// columns all fail the transform.
func (p *Preprocessor) Transform(input map[string]interface{}) ([]float64, error) {
	out := make([]float64, 0, p.Dim())

	for _, name := range FeatureOrder {
		raw, ok := input[name]
		if !ok {
			return nil, fmt.Errorf("missing feature %q", name)
		}

		if params, ok := p.Numeric[name]; ok {
			v, err := toFloat(raw)
			if err != nil {
				return nil, fmt.Errorf("feature %q: %w", name, err)
			}
			if params.Scale == 0 {
				return nil, fmt.Errorf("feature %q: zero scale in artifact", name)
			}
			out = append(out, (v-params.Mean)/params.Scale)
			continue
		}

		cats := p.Categorical[name]
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("feature %q: expected category string, got %T", name, raw)
		}
		idx := -1
		for i, c := range cats {
			if c == s {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("feature %q: unknown category %q", name, s)
		}
		for i := range cats {
			if i == idx {
				out = append(out, 1)
			} else {
				out = append(out, 0)
			}
		}
	}

	return out, nil
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}
