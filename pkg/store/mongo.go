package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/collectorsed/collectorsed/pkg/errors"
)

// MongoStore archives runs in a MongoDB collection, one document per run.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoOptions configures the MongoDB connection.
type MongoOptions struct {
	URI        string // e.g. "mongodb://localhost:27017"
	Database   string // defaults to "collectorsed"
	Collection string // defaults to "runs"
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, opts MongoOptions) (*MongoStore, error) {
	if opts.Database == "" {
		opts.Database = "collectorsed"
	}
	if opts.Collection == "" {
		opts.Collection = "runs"
	}

	client, err := mongo.Connect(ctx, mongooptions.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "connecting to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "pinging mongodb")
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(opts.Database).Collection(opts.Collection),
	}, nil
}

// SaveRun upserts a run document keyed by its ID.
func (s *MongoStore) SaveRun(ctx context.Context, run *Run) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": run.ID},
		run,
		mongooptions.Replace().SetUpsert(true),
	)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "saving run %s", run.ID)
	}
	return nil
}

// GetRun loads a run document by ID.
func (s *MongoStore) GetRun(ctx context.Context, id string) (*Run, error) {
	var run Run
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&run)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeRunNotFound, "run %s", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "loading run %s", id)
	}
	return &run, nil
}

// ListRuns returns run summaries sorted by creation time, newest first.
// The row table is excluded by projection to keep listings cheap.
func (s *MongoStore) ListRuns(ctx context.Context, limit int) ([]Summary, error) {
	findOpts := mongooptions.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{
			"_id":        1,
			"name":       1,
			"created_at": 1,
			"cell_count": "$scenario.cell_count",
			"passes":     1,
		})
	if limit > 0 {
		findOpts = findOpts.SetLimit(int64(limit))
	}

	cursor, err := s.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "listing runs")
	}
	defer cursor.Close(ctx)

	var summaries []Summary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decoding run listing")
	}
	return summaries, nil
}

// DeleteRun removes a run document by ID.
func (s *MongoStore) DeleteRun(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "deleting run %s", id)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeRunNotFound, "run %s", id)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
