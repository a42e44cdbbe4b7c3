package handlers

import (
	"encoding/json"
	"net/http"

	"heartrisk/ml"
	"heartrisk/models"
	"heartrisk/repository"
)

type AnalyzeHandler struct {
	Predictor *ml.Predictor
	Repo      repository.PredictionRepository
}

// Analyze scores the submitted feature values, stores the record under the
// authenticated user, and returns the classification. Any adapter failure is
// reported as a 500 without taking the service down.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request, userID string) {
	var input map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		errorJSON(w, http.StatusInternalServerError, "invalid request payload: "+err.Error())
		return
	}

	result, err := h.Predictor.Analyze(input)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	record := &models.PredictionRecord{
		UserID:     userID,
		Input:      input,
		Prediction: result.Prediction,
		Confidence: result.Confidence,
		Features:   ml.FeatureOrder,
		Baseline:   ml.HealthyBaseline,
	}
	if err := h.Repo.Create(record); err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"prediction": result.Prediction,
		"confidence": result.Confidence,
		"features":   ml.FeatureOrder,
		"input":      input,
		"baseline":   ml.HealthyBaseline,
		"record_id":  record.ID,
	})
}
