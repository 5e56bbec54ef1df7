package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/macetwatch/traffic-monitor/internal/core/domain"
)

const collectionObservations = "observations"

// ObservationRepository implements ports.ObservationRepository on MongoDB.
// The collection is append-only: documents are inserted and aggregated,
// never updated or removed.
type ObservationRepository struct {
	col *mongo.Collection
}

func NewObservationRepository(db *mongo.Database) *ObservationRepository {
	return &ObservationRepository{col: db.Collection(collectionObservations)}
}

// Insert appends one observation document.
func (r *ObservationRepository) Insert(ctx context.Context, obs *domain.Observation) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, obs); err != nil {
		return fmt.Errorf("insert observation: %w", err)
	}
	return nil
}

// AverageDurationSince returns the mean duration_in_traffic for a location
// over observations with timestamp >= since. An empty window surfaces as
// domain.ErrNoHistory so callers can tell absence from a zero average.
func (r *ObservationRepository) AverageDurationSince(ctx context.Context, locationKey string, since time.Time) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"location":  locationKey,
			"timestamp": bson.M{"$gte": since},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"avg_duration": bson.M{"$avg": "$duration_in_traffic"},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("average duration: %w", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return 0, fmt.Errorf("average duration: %w", err)
		}
		return 0, domain.ErrNoHistory
	}

	var row struct {
		AvgDuration float64 `bson:"avg_duration"`
	}
	if err := cursor.Decode(&row); err != nil {
		return 0, fmt.Errorf("average duration: decode: %w", err)
	}
	return row.AvgDuration, nil
}

// SummarySince aggregates count, mean duration, and severe count across all
// locations with timestamp >= since. An empty window yields a zero-count
// summary.
func (r *ObservationRepository) SummarySince(ctx context.Context, since time.Time) (*domain.TrafficSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"timestamp": bson.M{"$gte": since},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"count":        bson.M{"$sum": 1},
			"avg_duration": bson.M{"$avg": "$duration_in_traffic"},
			"severe_count": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$severity", string(domain.SeveritySevere)}},
				1,
				0,
			}}},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, fmt.Errorf("summary: %w", err)
		}
		return &domain.TrafficSummary{}, nil
	}

	var row struct {
		Count       int64   `bson:"count"`
		AvgDuration float64 `bson:"avg_duration"`
		SevereCount int64   `bson:"severe_count"`
	}
	if err := cursor.Decode(&row); err != nil {
		return nil, fmt.Errorf("summary: decode: %w", err)
	}

	return &domain.TrafficSummary{
		Count:       row.Count,
		AvgDuration: row.AvgDuration,
		SevereCount: row.SevereCount,
	}, nil
}

// EnsureIndexes creates the indexes backing the baseline and summary queries.
func (r *ObservationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "location", Value: 1}, {Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
