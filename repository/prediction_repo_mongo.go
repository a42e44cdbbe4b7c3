package repository

import (
	"context"
	"errors"
	"time"

	"heartrisk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoPredictionRepo struct {
	DB *mongo.Client
}

func NewMongoPredictionRepo(db *mongo.Client) *MongoPredictionRepo {
	return &MongoPredictionRepo{DB: db}
}

func (r *MongoPredictionRepo) collection() *mongo.Collection {
	return r.DB.Database(databaseName).Collection("predictions")
}

func (r *MongoPredictionRepo) Create(record *models.PredictionRecord) error {
	ctx := context.Background()

	if record.ID == "" {
		record.ID = primitive.NewObjectID().Hex()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err := r.collection().InsertOne(ctx, record)
	return err
}

func (r *MongoPredictionRepo) ListByUser(userID string) ([]*models.PredictionRecord, error) {
	ctx := context.Background()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.collection().Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []*models.PredictionRecord{}
	for cur.Next(ctx) {
		var rec models.PredictionRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		out = append(out, &rec)
	}
	return out, cur.Err()
}

func (r *MongoPredictionRepo) GetOne(userID, recordID string) (*models.PredictionRecord, error) {
	ctx := context.Background()

	var rec models.PredictionRecord
	err := r.collection().
		FindOne(ctx, bson.M{"_id": recordID, "user_id": userID}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *MongoPredictionRepo) DeleteOne(userID, recordID string) error {
	ctx := context.Background()

	res, err := r.collection().
		DeleteOne(ctx, bson.M{"_id": recordID, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *MongoPredictionRepo) DeleteAll(userID string) (int64, error) {
	ctx := context.Background()

	res, err := r.collection().DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
