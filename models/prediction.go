package models

import "time"

// PredictionRecord is one stored result of the risk analysis. Records are
// written once and never updated; ownership (UserID) is the only
// authorization check on reads and deletes.
type PredictionRecord struct {
	ID         string                 `json:"_id" bson:"_id,omitempty" db:"id"`
	UserID     string                 `json:"user_id" bson:"user_id" db:"user_id"`
	Input      map[string]interface{} `json:"input" bson:"input" db:"input"`
	Prediction string                 `json:"prediction" bson:"prediction" db:"prediction"`
	Confidence float64                `json:"confidence" bson:"confidence" db:"confidence"`
	Features   []string               `json:"features" bson:"features" db:"features"`
	Baseline   map[string]interface{} `json:"baseline" bson:"baseline" db:"baseline"`
	CreatedAt  time.Time              `json:"created_at" bson:"created_at" db:"created_at"`
}
