package bookingRepo

import (
	"context"

	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its internal handle.
	GetByID(id string) (*models.Booking, error)
	// GetAll retrieves non-archived bookings, newest first.
	GetAll() ([]models.Booking, error)
	// GetArchived retrieves archived bookings, newest first.
	GetArchived() ([]models.Booking, error)
	// GetActiveByEmployee retrieves non-archived, non-completed bookings
	// that list the employee in employeeAssigned.
	GetActiveByEmployee(employeeID string) ([]models.Booking, error)
	// GetPendingVehicleChanges retrieves bookings with a pending vehicle
	// change request, newest request first.
	GetPendingVehicleChanges() ([]models.Booking, error)
	// UpdateSetDocument applies a $set update to a booking.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// PushDocument applies a $push update to a booking (append-only logs).
	PushDocument(id string, pushDoc bson.M) error
	// Delete removes a booking record permanently.
	Delete(id string) error
	// ApproveVehicleChange applies the reassignment write set as a single
	// transactional unit: both history appends, the live vehicle fields, the
	// request approval and the two vehicle status updates. Either every write
	// applies or none does.
	ApproveVehicleChange(ctx context.Context, bookingID string, outgoing, incoming models.VehicleHistoryEntry) error
}
