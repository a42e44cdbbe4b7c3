package utils

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"heartrisk/models"
	"heartrisk/repository"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// BuildReportData assembles the template payload for one prediction record,
// pairing each submitted value with the healthy baseline in feature order.
func BuildReportData(user *models.AppUser, record *models.PredictionRecord) models.ReportData {
	rows := make([]models.ReportRow, 0, len(record.Features))
	for _, name := range record.Features {
		rows = append(rows, models.ReportRow{
			Feature:  name,
			Value:    record.Input[name],
			Baseline: record.Baseline[name],
		})
	}

	return models.ReportData{
		User:       user,
		Record:     record,
		Rows:       rows,
		Date:       record.CreatedAt.Format("02-Jan-2006 15:04"),
		Confidence: fmt.Sprintf("%.2f%%", record.Confidence*100),
	}
}

// renderReportHTML executes the report template and wraps it in the print
// stylesheet handed to Chrome.
func renderReportHTML(data models.ReportData) (string, error) {
	tmpl, err := template.ParseFiles("templates/report_template.html")
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: A4;
			margin: 20px;
		}
		body {
			font-family: Arial, Helvetica, sans-serif;
			font-size: 12px;
			margin: 0;
			padding: 0;
		}
		.report {
			page-break-inside: avoid;
			border: none;
		}
		</style>
		</head>
		<body><div class='report'>` + buf.String() + `</div></body></html>`

	return finalHTML, nil
}

// GenerateReportPDF renders a single prediction record as an A4 PDF report.
func GenerateReportPDF(repo *repository.ReportRepository, userID, recordID string) ([]byte, error) {
	record, err := repo.GetRecordForReport(userID, recordID)
	if err != nil {
		return nil, err
	}

	user, err := repo.GetUserForReport(userID)
	if err != nil {
		return nil, err
	}

	finalHTML, err := renderReportHTML(BuildReportData(user, record))
	if err != nil {
		return nil, err
	}

	// Create temp HTML file
	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "report_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	// Generate PDF with headless Chrome
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
