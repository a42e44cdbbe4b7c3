package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"heartrisk/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PostgresPredictionRepo struct {
	DB *sql.DB
}

func NewPostgresPredictionRepo(db *sql.DB) *PostgresPredictionRepo {
	return &PostgresPredictionRepo{DB: db}
}

func (r *PostgresPredictionRepo) Create(record *models.PredictionRecord) error {
	if record.ID == "" {
		record.ID = primitive.NewObjectID().Hex()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	input, err := json.Marshal(record.Input)
	if err != nil {
		return err
	}
	features, err := json.Marshal(record.Features)
	if err != nil {
		return err
	}
	baseline, err := json.Marshal(record.Baseline)
	if err != nil {
		return err
	}

	_, err = r.DB.Exec(`
		INSERT INTO prediction (id, user_id, input, prediction, confidence, features, baseline, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, record.ID, record.UserID, input, record.Prediction, record.Confidence, features, baseline, record.CreatedAt)

	return err
}

func (r *PostgresPredictionRepo) ListByUser(userID string) ([]*models.PredictionRecord, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_id, input, prediction, confidence, features, baseline, created_at
		FROM prediction
		WHERE user_id=$1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*models.PredictionRecord{}
	for rows.Next() {
		rec, err := scanPrediction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PostgresPredictionRepo) GetOne(userID, recordID string) (*models.PredictionRecord, error) {
	row := r.DB.QueryRow(`
		SELECT id, user_id, input, prediction, confidence, features, baseline, created_at
		FROM prediction
		WHERE id=$1 AND user_id=$2
	`, recordID, userID)

	rec, err := scanPrediction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (r *PostgresPredictionRepo) DeleteOne(userID, recordID string) error {
	res, err := r.DB.Exec(`
		DELETE FROM prediction WHERE id=$1 AND user_id=$2
	`, recordID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *PostgresPredictionRepo) DeleteAll(userID string) (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM prediction WHERE user_id=$1`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPrediction(row rowScanner) (*models.PredictionRecord, error) {
	rec := &models.PredictionRecord{}
	var input, features, baseline []byte

	err := row.Scan(&rec.ID, &rec.UserID, &input, &rec.Prediction,
		&rec.Confidence, &features, &baseline, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(input, &rec.Input); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(features, &rec.Features); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(baseline, &rec.Baseline); err != nil {
		return nil, err
	}
	return rec, nil
}
