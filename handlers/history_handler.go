package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"heartrisk/repository"
)

type HistoryHandler struct {
	Repo repository.PredictionRepository
}

// List returns the user's prediction history, most recent first
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request, userID string) {
	records, err := h.Repo.ListByUser(userID)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"records": records})
}

// DeleteOne deletes a single record owned by the user. A record id that is
// malformed or owned by another user reads as not found.
func (h *HistoryHandler) DeleteOne(w http.ResponseWriter, r *http.Request, userID, recordID string) {
	if err := h.Repo.DeleteOne(userID, recordID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			errorJSON(w, http.StatusNotFound, "Record not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	msgJSON(w, http.StatusOK, "Record deleted successfully")
}

// DeleteAll deletes every record owned by the user
func (h *HistoryHandler) DeleteAll(w http.ResponseWriter, r *http.Request, userID string) {
	count, err := h.Repo.DeleteAll(userID)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}

	msgJSON(w, http.StatusOK, fmt.Sprintf("Deleted %d records.", count))
}
