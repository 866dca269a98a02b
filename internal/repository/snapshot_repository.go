package repository

import (
	"context"
	"time"

	"freshtrack-be/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SnapshotRepository struct {
	collection *mongo.Collection
}

func NewSnapshotRepository(db *mongo.Database) *SnapshotRepository {
	return &SnapshotRepository{
		collection: db.Collection("stats_snapshots"),
	}
}

func (r *SnapshotRepository) Insert(ctx context.Context, stats *models.DashboardStats) error {
	snapshot := models.StatsSnapshot{
		ID:      primitive.NewObjectID(),
		TakenAt: time.Now(),
		Stats:   *stats,
	}
	_, err := r.collection.InsertOne(ctx, snapshot)
	return err
}

func (r *SnapshotRepository) ListRecent(ctx context.Context, limit int) ([]models.StatsSnapshot, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "takenAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var snapshots []models.StatsSnapshot
	if err = cursor.All(ctx, &snapshots); err != nil {
		return nil, err
	}

	return snapshots, nil
}
