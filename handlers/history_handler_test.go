package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"heartrisk/models"
	"heartrisk/repository"
)

func TestHistoryList(t *testing.T) {
	now := time.Now().UTC()
	records := []*models.PredictionRecord{
		{ID: "r2", UserID: "u1", Prediction: "Low Risk", CreatedAt: now},
		{ID: "r1", UserID: "u1", Prediction: "High Risk", CreatedAt: now.Add(-time.Hour)},
	}
	h := &HistoryHandler{Repo: &MockPredictionRepo{
		ListByUserFunc: func(userID string) ([]*models.PredictionRecord, error) {
			if userID != "u1" {
				t.Errorf("listed for %q, want u1", userID)
			}
			return records, nil
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	w := httptest.NewRecorder()
	h.List(w, req, "u1")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	got, _ := body["records"].([]interface{})
	if len(got) != 2 {
		t.Fatalf("records = %d, want 2", len(got))
	}
	first, _ := got[0].(map[string]interface{})
	if first["_id"] != "r2" {
		t.Errorf("most recent record first: got %v", first["_id"])
	}
}

func TestHistoryDeleteOne(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"deleted", nil, http.StatusOK},
		{"not found", repository.ErrRecordNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HistoryHandler{Repo: &MockPredictionRepo{
				DeleteOneFunc: func(userID, recordID string) error { return tt.err },
			}}
			req := httptest.NewRequest(http.MethodDelete, "/api/history/r1", nil)
			w := httptest.NewRecorder()
			h.DeleteOne(w, req, "u1", "r1")
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestHistoryDeleteAll(t *testing.T) {
	h := &HistoryHandler{Repo: &MockPredictionRepo{
		DeleteAllFunc: func(userID string) (int64, error) { return 3, nil },
	}}
	req := httptest.NewRequest(http.MethodDelete, "/api/history", nil)
	w := httptest.NewRecorder()
	h.DeleteAll(w, req, "u1")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := decodeBody(t, w)["msg"]; got != "Deleted 3 records." {
		t.Errorf("msg = %q", got)
	}
}
