package ml

// FeatureOrder is the column order the preprocessor and model were trained
// with. Incoming payloads are keyed by name and reordered into this sequence
// before encoding.
var FeatureOrder = []string{
	"Age", "RestingBP", "Cholesterol", "MaxHR", "Oldpeak",
	"Sex", "ChestPainType", "RestingECG", "ExerciseAngina",
	"ST_Slope", "FastingBS",
}

// HealthyBaseline is a fixed low-risk reference profile returned alongside
// every prediction for display and comparison.
var HealthyBaseline = map[string]interface{}{
	"Age":            30,
	"RestingBP":      120,
	"Cholesterol":    180,
	"MaxHR":          140,
	"Oldpeak":        0,
	"Sex":            "F",
	"ChestPainType":  "ATA",
	"RestingECG":     "Normal",
	"ExerciseAngina": "N",
	"ST_Slope":       "Up",
	"FastingBS":      0,
}
