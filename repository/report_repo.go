package repository

import "heartrisk/models"

// ReportRepository provides methods to fetch data for PDF report generation
type ReportRepository struct {
	PredictionRepo PredictionRepository
	UserRepo       UserRepository
}

// NewReportRepository initializes a report repository
func NewReportRepository(predictionRepo PredictionRepository, userRepo UserRepository) *ReportRepository {
	return &ReportRepository{
		PredictionRepo: predictionRepo,
		UserRepo:       userRepo,
	}
}

// GetRecordForReport fetches one record scoped to its owner
func (r *ReportRepository) GetRecordForReport(userID, recordID string) (*models.PredictionRecord, error) {
	return r.PredictionRepo.GetOne(userID, recordID)
}

// GetUserForReport fetches the owning user for display on the report
func (r *ReportRepository) GetUserForReport(userID string) (*models.AppUser, error) {
	return r.UserRepo.GetUserByID(userID)
}
