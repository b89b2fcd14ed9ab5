// File: database/repository/vehicle/vehicle.go
package vehicleRepo

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

// VehicleRepository defines methods for vehicle data access.
type VehicleRepository interface {
	// Create inserts a new vehicle record.
	Create(vehicle *models.Vehicle) error
	// GetByVehicleID retrieves a vehicle by its human-readable identifier.
	// Returns (nil, nil) when no vehicle matches.
	GetByVehicleID(vehicleID string) (*models.Vehicle, error)
	// GetAll retrieves all vehicles.
	GetAll() ([]models.Vehicle, error)
	// UpdateSetDocument applies a $set update to a vehicle.
	UpdateSetDocument(vehicleID string, updateDoc bson.M) error
	// Delete removes a vehicle record.
	Delete(vehicleID string) error
	// SetStatus updates a vehicle's availability status and reports how many
	// documents matched, so callers can detect dangling references.
	SetStatus(vehicleID string, status models.ResourceStatus) (int64, error)
	// ExistsPlateOrRegistration reports whether another vehicle already holds
	// the given plate or registration number.
	ExistsPlateOrRegistration(plateNumber, registrationNumber, excludeVehicleID string) (bool, error)
}

// MongoVehicleRepo implements VehicleRepository using MongoDB.
type MongoVehicleRepo struct {
	coll *mongo.Collection
}

// NewMongoVehicleRepo creates a new instance of VehicleRepository using MongoDB.
func NewMongoVehicleRepo() VehicleRepository {
	repo := &MongoVehicleRepo{coll: database.DB().Collection("vehicles")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create vehicle indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoVehicleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "vehicleId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "plateNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "registrationNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new vehicle document.
func (r *MongoVehicleRepo) Create(vehicle *models.Vehicle) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, vehicle)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("duplicate vehicle identifier: %w", err)
		}
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// GetByVehicleID retrieves a vehicle by its human-readable identifier.
func (r *MongoVehicleRepo) GetByVehicleID(vehicleID string) (*models.Vehicle, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var vehicle models.Vehicle
	if err := r.coll.FindOne(ctx, bson.M{"vehicleId": vehicleID}).Decode(&vehicle); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch vehicle %s: %w", vehicleID, err)
	}
	return &vehicle, nil
}

// GetAll retrieves all vehicles.
func (r *MongoVehicleRepo) GetAll() ([]models.Vehicle, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []models.Vehicle
	for cursor.Next(ctx) {
		var v models.Vehicle
		if err := cursor.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

// UpdateSetDocument applies a $set update to a vehicle.
func (r *MongoVehicleRepo) UpdateSetDocument(vehicleID string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"vehicleId": vehicleID}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update vehicle %s: %w", vehicleID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("vehicle %s not found", vehicleID)
	}
	return nil
}

// Delete removes a vehicle document.
func (r *MongoVehicleRepo) Delete(vehicleID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"vehicleId": vehicleID})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle %s: %w", vehicleID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("vehicle %s not found", vehicleID)
	}
	return nil
}

// SetStatus updates the availability status of a vehicle. A zero matched
// count is not an error here; the registry decides how to treat it.
func (r *MongoVehicleRepo) SetStatus(vehicleID string, status models.ResourceStatus) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"vehicleId": vehicleID}, update)
	if err != nil {
		return 0, fmt.Errorf("failed to set status for vehicle %s: %w", vehicleID, err)
	}
	return result.MatchedCount, nil
}

// ExistsPlateOrRegistration reports whether another vehicle already holds the
// given plate or registration number.
func (r *MongoVehicleRepo) ExistsPlateOrRegistration(plateNumber, registrationNumber, excludeVehicleID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"$or": bson.A{
			bson.M{"plateNumber": plateNumber},
			bson.M{"registrationNumber": registrationNumber},
		},
	}
	if excludeVehicleID != "" {
		filter["vehicleId"] = bson.M{"$ne": excludeVehicleID}
	}

	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check plate/registration uniqueness: %w", err)
	}
	return count > 0, nil
}
