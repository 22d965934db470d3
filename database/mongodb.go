package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	connectAttempts = 5
	connectBackoff  = 2 * time.Second
)

var (
	client   *mongo.Client
	database *mongo.Database
)

/*
* Connect dials the document store with a bounded retry budget.
* Startup must fail fast when the store stays unreachable.
 */
func Connect(uri, dbName string) error {
	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetRegistry(newRegistry()))
		if err == nil {
			err = c.Ping(ctx, nil)
		}
		cancel()
		if err == nil {
			client = c
			database = c.Database(dbName)
			log.Println("Connected to MongoDB database:", dbName)
			return nil
		}
		lastErr = err
		log.Printf("MongoDB connect attempt %d/%d failed: %v", attempt, connectAttempts, err)
		time.Sleep(connectBackoff)
	}
	return fmt.Errorf("mongodb unreachable after %d attempts: %w", connectAttempts, lastErr)
}

func Disconnect() {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Println("Error while disconnecting from MongoDB:", err)
	}
}

func OpenCollection(name string) *mongo.Collection {
	return database.Collection(name)
}

/*
* Thin helpers shared by every repository. They keep the repositories to
* filter building and decoding only.
 */

// FindOne decodes a single matching document into result. A miss is reported
// as (false, nil) rather than an error.
func FindOne(ctx context.Context, coll *mongo.Collection, filter interface{}, result interface{}) (bool, error) {
	err := coll.FindOne(ctx, filter).Decode(result)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func InsertOne(ctx context.Context, coll *mongo.Collection, doc interface{}) (interface{}, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return res.InsertedID, nil
}

func ReplaceOne(ctx context.Context, coll *mongo.Collection, filter interface{}, doc interface{}) error {
	res, err := coll.ReplaceOne(ctx, filter, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func DeleteOne(ctx context.Context, coll *mongo.Collection, filter interface{}) (int64, error) {
	res, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// FindAll decodes every matching document into results, optionally sorted.
func FindAll(ctx context.Context, coll *mongo.Collection, filter interface{}, sort interface{}, results interface{}) error {
	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	return cursor.All(ctx, results)
}

// FindPage runs a zero-indexed paginated query and reports the unpaged total.
func FindPage(ctx context.Context, coll *mongo.Collection, filter interface{}, results interface{}, page, size int64, sortBy, sortDir string) (int64, error) {
	dir := -1
	if sortDir == "asc" {
		dir = 1
	}
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: dir}}).
		SetSkip(page * size).
		SetLimit(size)
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return 0, err
	}
	if err := cursor.All(ctx, results); err != nil {
		return 0, err
	}
	return total, nil
}

func Count(ctx context.Context, coll *mongo.Collection, filter interface{}) (int64, error) {
	return coll.CountDocuments(ctx, filter)
}

func Exists(ctx context.Context, coll *mongo.Collection, filter interface{}) (bool, error) {
	n, err := coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
