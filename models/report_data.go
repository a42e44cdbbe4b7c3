package models

// ReportRow pairs one feature's submitted value with the healthy baseline
// value, for display in the PDF report.
type ReportRow struct {
	Feature  string
	Value    interface{}
	Baseline interface{}
}

type ReportData struct {
	User       *AppUser
	Record     *PredictionRecord
	Rows       []ReportRow
	Date       string
	Confidence string
}
