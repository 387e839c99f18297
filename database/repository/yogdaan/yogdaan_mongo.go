package yogdaanRepo

import (
	"context"
	"fmt"
	"time"

	"vishalaksha/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "yogdaan-submissions"

// MongoYogdaanRepo implements Repository using MongoDB.
type MongoYogdaanRepo struct {
	coll *mongo.Collection
}

// NewMongoYogdaanRepo creates a submission repository backed by the given
// client and database.
func NewMongoYogdaanRepo(client *mongo.Client, dbName string) Repository {
	coll := client.Database(dbName).Collection(collectionName)
	repo := &MongoYogdaanRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoYogdaanRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "submittedAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new submission document.
func (r *MongoYogdaanRepo) Create(submission *models.YogdaanSubmission) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, submission)
	if err != nil {
		return fmt.Errorf("failed to create yogdaan submission: %w", err)
	}
	return nil
}
