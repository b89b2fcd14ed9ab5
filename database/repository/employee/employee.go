// File: database/repository/employee/employee.go
package employeeRepo

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

// EmployeeRepository defines methods for employee data access.
type EmployeeRepository interface {
	// Create inserts a new employee record.
	Create(employee *models.Employee) error
	// GetByEmployeeID retrieves an employee by its human-readable identifier.
	// Returns (nil, nil) when no employee matches.
	GetByEmployeeID(employeeID string) (*models.Employee, error)
	// GetAll retrieves all employees.
	GetAll() ([]models.Employee, error)
	// GetByEmployeeIDs retrieves the employees matching the given identifiers.
	GetByEmployeeIDs(employeeIDs []string) ([]models.Employee, error)
	// UpdateSetDocument applies a $set update to an employee.
	UpdateSetDocument(employeeID string, updateDoc bson.M) error
	// Delete removes an employee record.
	Delete(employeeID string) error
	// SetStatusMany updates the availability status of a set of employees and
	// reports how many documents matched, so callers can detect dangling
	// references.
	SetStatusMany(employeeIDs []string, status models.ResourceStatus) (int64, error)
}

// MongoEmployeeRepo implements EmployeeRepository using MongoDB.
type MongoEmployeeRepo struct {
	coll *mongo.Collection
}

// NewMongoEmployeeRepo creates a new instance of EmployeeRepository using MongoDB.
func NewMongoEmployeeRepo() EmployeeRepository {
	repo := &MongoEmployeeRepo{coll: database.DB().Collection("employees")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create employee indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoEmployeeRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "employeeId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new employee document.
func (r *MongoEmployeeRepo) Create(employee *models.Employee) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, employee)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("duplicate employee identifier: %w", err)
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// GetByEmployeeID retrieves an employee by its human-readable identifier.
func (r *MongoEmployeeRepo) GetByEmployeeID(employeeID string) (*models.Employee, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var employee models.Employee
	if err := r.coll.FindOne(ctx, bson.M{"employeeId": employeeID}).Decode(&employee); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch employee %s: %w", employeeID, err)
	}
	return &employee, nil
}

// GetAll retrieves all employees.
func (r *MongoEmployeeRepo) GetAll() ([]models.Employee, error) {
	return r.find(bson.M{})
}

// GetByEmployeeIDs retrieves the employees matching the given identifiers.
func (r *MongoEmployeeRepo) GetByEmployeeIDs(employeeIDs []string) ([]models.Employee, error) {
	return r.find(bson.M{"employeeId": bson.M{"$in": employeeIDs}})
}

func (r *MongoEmployeeRepo) find(filter bson.M) ([]models.Employee, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve employees: %w", err)
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	for cursor.Next(ctx) {
		var e models.Employee
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, nil
}

// UpdateSetDocument applies a $set update to an employee.
func (r *MongoEmployeeRepo) UpdateSetDocument(employeeID string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"employeeId": employeeID}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", employeeID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("employee %s not found", employeeID)
	}
	return nil
}

// Delete removes an employee document.
func (r *MongoEmployeeRepo) Delete(employeeID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"employeeId": employeeID})
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("employee %s not found", employeeID)
	}
	return nil
}

// SetStatusMany updates the availability status of a set of employees. A
// matched count lower than len(employeeIDs) means some references dangle;
// the registry decides how to treat that.
func (r *MongoEmployeeRepo) SetStatusMany(employeeIDs []string, status models.ResourceStatus) (int64, error) {
	if len(employeeIDs) == 0 {
		return 0, nil
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"employeeId": bson.M{"$in": employeeIDs}}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}

	result, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to set status for employees: %w", err)
	}
	return result.MatchedCount, nil
}
