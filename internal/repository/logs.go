package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/catering-service/internal/domain/model"
)

// LogsRepository stores request and audit log entries.
type LogsRepository struct {
	collection *mongo.Collection
}

// NewLogsRepository creates a new logs repository.
func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{collection: db.Logs}
}

// Create inserts a single log entry.
func (r *LogsRepository) Create(ctx context.Context, entry *model.LogEntry) error {
	normalizeEntry(entry)
	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// CreateMany inserts multiple log entries in one call.
func (r *LogsRepository) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	docs := make([]interface{}, len(entries))
	for i, entry := range entries {
		normalizeEntry(entry)
		docs[i] = entry
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// Query returns entries matching the options, newest first.
func (r *LogsRepository) Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	filter := buildLogFilter(opts)

	findOpts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if opts.Limit > 0 {
		findOpts.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOpts.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var entries []model.LogEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns the number of entries matching the options.
func (r *LogsRepository) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, buildLogFilter(opts))
}

func normalizeEntry(entry *model.LogEntry) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
}

func buildLogFilter(opts model.LogQueryOptions) bson.M {
	filter := bson.M{}
	if opts.RequestID != "" {
		filter["request_id"] = opts.RequestID
	}
	if opts.SessionID != "" {
		filter["session_id"] = opts.SessionID
	}
	if opts.Level != "" {
		filter["level"] = opts.Level
	}
	if opts.Method != "" {
		filter["method"] = opts.Method
	}
	if opts.Path != "" {
		filter["path"] = opts.Path
	}
	if opts.StartTime != nil || opts.EndTime != nil {
		timeRange := bson.M{}
		if opts.StartTime != nil {
			timeRange["$gte"] = *opts.StartTime
		}
		if opts.EndTime != nil {
			timeRange["$lte"] = *opts.EndTime
		}
		filter["timestamp"] = timeRange
	}
	return filter
}
