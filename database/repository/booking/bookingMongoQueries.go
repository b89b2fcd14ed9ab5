// File: database/repository/booking/bookingMongoQueries.go
package bookingRepo

import (
	"fmt"
	"time"

	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoBookingRepo) findBookings(filter bson.M, opts *options.FindOptions) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// GetAll retrieves non-archived bookings, newest first.
func (r *MongoBookingRepo) GetAll() ([]models.Booking, error) {
	filter := bson.M{"isArchived": false}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.findBookings(filter, opts)
}

// GetArchived retrieves archived bookings, newest first.
func (r *MongoBookingRepo) GetArchived() ([]models.Booking, error) {
	filter := bson.M{"isArchived": true}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.findBookings(filter, opts)
}

// GetActiveByEmployee retrieves the caller's working set for the mobile
// surface: bookings listing the employee, not yet completed, not archived.
func (r *MongoBookingRepo) GetActiveByEmployee(employeeID string) ([]models.Booking, error) {
	filter := bson.M{
		"employeeAssigned": employeeID,
		"status":           bson.M{"$ne": models.BookingCompleted},
		"isArchived":       false,
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.findBookings(filter, opts)
}

// GetPendingVehicleChanges retrieves bookings with a pending vehicle change
// request, newest request first.
func (r *MongoBookingRepo) GetPendingVehicleChanges() ([]models.Booking, error) {
	filter := bson.M{
		"vehicleChangeRequest.requested": true,
		"vehicleChangeRequest.status":    models.ChangeRequestPending,
	}
	opts := options.Find().SetSort(bson.D{{Key: "vehicleChangeRequest.requestedAt", Value: -1}})
	return r.findBookings(filter, opts)
}
