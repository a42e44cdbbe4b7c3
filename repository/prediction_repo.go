package repository

import "heartrisk/models"

// PredictionRepository persists prediction records scoped to their owning
// user. A record id that does not parse or does not belong to the given user
// is treated as not found.
type PredictionRepository interface {
	Create(record *models.PredictionRecord) error
	ListByUser(userID string) ([]*models.PredictionRecord, error)
	GetOne(userID, recordID string) (*models.PredictionRecord, error)
	DeleteOne(userID, recordID string) error
	DeleteAll(userID string) (int64, error)
}
