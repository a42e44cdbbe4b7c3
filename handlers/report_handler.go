package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"heartrisk/repository"
	"heartrisk/utils"
)

type ReportHandler struct {
	Repo     *repository.ReportRepository
	SavePath string

	// Generate and Upload default to the chromedp and R2 implementations;
	// tests swap them out.
	Generate func(repo *repository.ReportRepository, userID, recordID string) ([]byte, error)
	Upload   func(fileBytes []byte, filename string) (string, error)
}

// Report handles the API request to generate and save a prediction report PDF
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request, userID, recordID string) {
	generate := h.Generate
	if generate == nil {
		generate = utils.GenerateReportPDF
	}
	upload := h.Upload
	if upload == nil {
		upload = utils.UploadToR2
	}

	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./reports"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		errorJSON(w, http.StatusInternalServerError, "failed to create save directory: "+err.Error())
		return
	}

	pdfBytes, err := generate(h.Repo, userID, recordID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			errorJSON(w, http.StatusNotFound, "Record not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "failed to generate PDF: "+err.Error())
		return
	}

	filename := fmt.Sprintf("report_%s_%d.pdf", recordID, time.Now().Unix())

	// Prefer object storage when configured; keep the local copy either way
	savePath := filepath.Join(saveDir, filename)
	if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
		errorJSON(w, http.StatusInternalServerError, "failed to save PDF: "+err.Error())
		return
	}

	url, err := upload(pdfBytes, filename)
	if err != nil {
		// Log the error but don't block the response
		fmt.Printf("failed to upload report %s to R2: %v\n", filename, err)
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "file": filename})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "file": filename, "url": url})
}
