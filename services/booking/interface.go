package booking

import (
	"context"
	"time"

	bookingRepo "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/booking"
	counterRepo "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/counter"
	employeeRepo "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/employee"
	vehicleRepo "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/vehicle"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/notification"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/registry"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/storage"
)

// Actor is the authenticated identity performing an operation, handed to the
// core by the authentication collaborator.
type Actor struct {
	ID   string
	Role string // "admin", "staff", "Driver" or "Helper"
}

// IsOffice reports whether the actor is office staff.
func (a Actor) IsOffice() bool {
	return a.Role == "admin" || a.Role == "staff"
}

// CreateBookingRequest carries the fields required to create a booking.
type CreateBookingRequest struct {
	ClientName       string    `json:"clientName" binding:"required"`
	PickupLocation   string    `json:"pickupLocation" binding:"required"`
	DeliveryLocation string    `json:"deliveryLocation" binding:"required"`
	DeliveryDate     time.Time `json:"deliveryDate" binding:"required"`
	VehicleType      string    `json:"vehicleType" binding:"required"`
	VehicleID        string    `json:"vehicleId"`
	EmployeeAssigned []string  `json:"employeeAssigned" binding:"required"`
	Remarks          string    `json:"remarks"`
}

// UpdateBookingRequest carries the editable non-status fields. Vehicle and
// employee bindings are not editable here; vehicles change only through the
// reassignment workflow and employee membership never changes.
type UpdateBookingRequest struct {
	ClientName       string     `json:"clientName"`
	PickupLocation   string     `json:"pickupLocation"`
	DeliveryLocation string     `json:"deliveryLocation"`
	DeliveryDate     *time.Time `json:"deliveryDate"`
	Remarks          *string    `json:"remarks"`
}

// ProofPayload is an inline proof-of-delivery image, supplied with the
// transition into Delivered (or Completed through the mobile surface).
type ProofPayload struct {
	Data         string `json:"data"` // data:image/...;base64,... URI
	DocumentType string `json:"documentType"`
}

// TransitionOptions carries optional inputs for a status transition.
type TransitionOptions struct {
	Proof *ProofPayload
}

// PendingVehicleChange is a pending request enriched with the assigned
// employees for operator review.
type PendingVehicleChange struct {
	Booking   models.Booking    `json:"booking"`
	Employees []models.Employee `json:"employees"`
}

// BookingService is the booking lifecycle and resource consistency engine.
type BookingService interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error)
	GetBooking(id string) (*models.Booking, error)
	ListBookings() ([]models.Booking, error)
	ListArchived() ([]models.Booking, error)
	UpdateBooking(id string, req UpdateBookingRequest) (*models.Booking, error)

	// Transition moves a booking one step along the lifecycle chain,
	// applying the side effects the target status requires.
	Transition(ctx context.Context, bookingID string, target models.BookingStatus, actor Actor, opts TransitionOptions) (*models.Booking, error)
	// AdminSetStatus is the administrative escape hatch: it sets any
	// recognized status without validating the previous state and performs
	// no resource sync. Every use is recorded in the booking's status audit.
	AdminSetStatus(ctx context.Context, bookingID string, target models.BookingStatus, actor Actor, note string) (*models.Booking, error)

	UpdateDriverLocation(bookingID string, actor Actor, latitude, longitude, accuracy float64) (*models.Booking, error)

	Archive(id string) error
	Restore(id string) error
	HardDelete(id string) error

	RequestVehicleChange(bookingID, reason string) (*models.Booking, error)
	ListPendingVehicleChanges() ([]PendingVehicleChange, error)
	ApproveVehicleChange(ctx context.Context, bookingID, newVehicleID string) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	VehicleRepo  vehicleRepo.VehicleRepository
	EmployeeRepo employeeRepo.EmployeeRepository
	Counters     counterRepo.CounterRepository
	Registry     registry.RegistryService
	Storage      storage.StorageService
	Notify       notification.NotificationService
}
