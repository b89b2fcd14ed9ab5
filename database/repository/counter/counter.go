// File: database/repository/counter/counter.go
package counterRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/jpcunanan716/bestaccord-transportation-sub000/database"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Counter names backing the human-readable identifier sequences.
const (
	SeqReservation = "reservation"
	SeqTrip        = "trip"
	SeqEmployee    = "employee"
	SeqVehicle     = "vehicle"
)

// CounterRepository issues gap-free monotonic integers per named counter.
type CounterRepository interface {
	// Next atomically increments the named counter and returns the new value.
	// Two concurrent calls for the same name never observe the same value.
	Next(ctx context.Context, name string) (int64, error)
}

// MongoCounterRepo implements CounterRepository using MongoDB.
type MongoCounterRepo struct {
	coll *mongo.Collection
}

// NewMongoCounterRepo creates a new instance of CounterRepository using MongoDB.
func NewMongoCounterRepo() CounterRepository {
	return &MongoCounterRepo{coll: database.DB().Collection("counters")}
}

// Next performs a single upsert-with-increment. The first call for a name
// creates the document with seq = 1 atomically with the read; there is no
// separate existence check. If the increment fails, the caller's creation
// must fail with it — a fallback identifier risks collision.
func (r *MongoCounterRepo) Next(ctx context.Context, name string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"name": name}
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter models.Counter
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		return 0, fmt.Errorf("failed to increment counter %q: %w", name, err)
	}
	return counter.Seq, nil
}
