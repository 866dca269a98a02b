package repository

import (
	"context"
	"fmt"

	"freshtrack-be/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Scan sub-collection names.
const (
	CollectionShelf   = "shelf"
	CollectionHistory = "history"
)

type ScanRepository struct {
	shelf   *mongo.Collection
	history *mongo.Collection
}

func NewScanRepository(db *mongo.Database) *ScanRepository {
	return &ScanRepository{
		shelf:   db.Collection(CollectionShelf),
		history: db.Collection(CollectionHistory),
	}
}

func (r *ScanRepository) forName(name string) (*mongo.Collection, error) {
	switch name {
	case CollectionShelf:
		return r.shelf, nil
	case CollectionHistory:
		return r.history, nil
	default:
		return nil, fmt.Errorf("unknown scan collection %q", name)
	}
}

func (r *ScanRepository) ListForUser(ctx context.Context, userID, name string) ([]models.Scan, error) {
	coll, err := r.forName(name)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var scans []models.Scan
	if err = cursor.All(ctx, &scans); err != nil {
		return nil, err
	}

	return scans, nil
}

func (r *ScanRepository) CountForUser(ctx context.Context, userID, name string) (int64, error) {
	coll, err := r.forName(name)
	if err != nil {
		return 0, err
	}
	return coll.CountDocuments(ctx, bson.M{"userId": userID})
}

func (r *ScanRepository) DeleteForUser(ctx context.Context, userID, name string) (int64, error) {
	coll, err := r.forName(name)
	if err != nil {
		return 0, err
	}

	res, err := coll.DeleteMany(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *ScanRepository) SampleForUser(ctx context.Context, userID, name string, limit int) ([]models.Scan, error) {
	coll, err := r.forName(name)
	if err != nil {
		return nil, err
	}

	findOptions := options.Find().SetLimit(int64(limit))
	cursor, err := coll.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var scans []models.Scan
	if err = cursor.All(ctx, &scans); err != nil {
		return nil, err
	}

	return scans, nil
}
