// File: services/mobile/mobile.go
package mobile

import (
	"context"

	bookingRepo "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/booking"
	employeeRepo "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/employee"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/booking"

	"go.mongodb.org/mongo-driver/bson"
)

// MobileService is the driver/helper session surface. Every operation is
// scoped to bookings the caller is bound to, and only the restricted
// sub-path of the state machine is reachable from here.
type MobileService interface {
	// AssignedBookings returns the caller's working set: bookings listing
	// them, not completed, not archived.
	AssignedBookings(employeeID string) ([]models.Booking, error)
	// Progress advances a booking along the driver-visible sub-path
	// (In Transit, Delivered, Completed).
	Progress(ctx context.Context, employeeID, bookingID string, target models.BookingStatus, proof *booking.ProofPayload) (*models.Booking, error)
	// ReportLocation records the driver's position while In Transit.
	ReportLocation(employeeID, bookingID string, latitude, longitude, accuracy float64) (*models.Booking, error)
	// UpdateFCMToken stores the device push token for the employee.
	UpdateFCMToken(employeeID, token string) error
}

// DefaultMobileService is the production implementation.
type DefaultMobileService struct {
	Bookings     booking.BookingService
	Repo         bookingRepo.BookingRepository
	EmployeeRepo employeeRepo.EmployeeRepository
}

func (s *DefaultMobileService) actorFor(employeeID string) (booking.Actor, error) {
	emp, err := s.EmployeeRepo.GetByEmployeeID(employeeID)
	if err != nil {
		return booking.Actor{}, err
	}
	if emp == nil {
		return booking.Actor{}, booking.NewNotFoundError("employee %s not found", employeeID)
	}
	return booking.Actor{ID: emp.EmployeeID, Role: string(emp.Role)}, nil
}

func (s *DefaultMobileService) AssignedBookings(employeeID string) ([]models.Booking, error) {
	return s.Repo.GetActiveByEmployee(employeeID)
}

func (s *DefaultMobileService) Progress(
	ctx context.Context,
	employeeID, bookingID string,
	target models.BookingStatus,
	proof *booking.ProofPayload,
) (*models.Booking, error) {
	if !target.IsValid() {
		return nil, booking.NewValidationError("unrecognized status %q", string(target))
	}
	if !target.IsDriverTarget() {
		return nil, booking.NewPreconditionError("status %s cannot be set from the mobile surface", target)
	}

	actor, err := s.actorFor(employeeID)
	if err != nil {
		return nil, err
	}

	b, err := s.Bookings.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if !isBound(b, employeeID) {
		return nil, booking.NewPreconditionError("booking %s is not assigned to you", b.TripNumber)
	}

	return s.Bookings.Transition(ctx, bookingID, target, actor, booking.TransitionOptions{Proof: proof})
}

func (s *DefaultMobileService) ReportLocation(
	employeeID, bookingID string,
	latitude, longitude, accuracy float64,
) (*models.Booking, error) {
	actor, err := s.actorFor(employeeID)
	if err != nil {
		return nil, err
	}
	return s.Bookings.UpdateDriverLocation(bookingID, actor, latitude, longitude, accuracy)
}

func (s *DefaultMobileService) UpdateFCMToken(employeeID, token string) error {
	if token == "" {
		return booking.NewValidationError("fcm token is required")
	}
	return s.EmployeeRepo.UpdateSetDocument(employeeID, bson.M{"fcmToken": token})
}

func isBound(b *models.Booking, employeeID string) bool {
	for _, id := range b.EmployeeAssigned {
		if id == employeeID {
			return true
		}
	}
	return false
}
