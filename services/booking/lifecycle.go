package booking

import (
	"context"
	"time"

	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func (s *DefaultBookingService) isBound(b *models.Booking, actor Actor) bool {
	for _, employeeID := range b.EmployeeAssigned {
		if employeeID == actor.ID {
			return true
		}
	}
	return false
}

// Transition moves a booking one step along the lifecycle chain. The chain is
// linear: any skip or backward move is refused here; corrections go through
// AdminSetStatus.
func (s *DefaultBookingService) Transition(
	ctx context.Context,
	bookingID string,
	target models.BookingStatus,
	actor Actor,
	opts TransitionOptions,
) (*models.Booking, error) {
	if !target.IsValid() {
		return nil, NewValidationError("unrecognized status %q", string(target))
	}

	b, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if !b.Status.CanTransitionTo(target) {
		return nil, NewPreconditionError("cannot move booking %s from %s to %s", b.TripNumber, b.Status, target)
	}

	updateDoc := bson.M{"status": target}

	switch target {
	case models.BookingInTransit:
		if !s.isBound(b, actor) {
			return nil, NewPreconditionError("only an assigned driver or helper can start transit")
		}
		// A location from a previous leg would be misleading once the truck
		// actually rolls; clear it until the driver reports a fresh one.
		updateDoc["driverLocation"] = nil

	case models.BookingDelivered:
		proofDoc, err := s.attachProof(ctx, b, opts.Proof)
		if err != nil {
			return nil, err
		}
		updateDoc["proofOfDelivery"] = proofDoc
	}

	if err := s.Repo.UpdateSetDocument(bookingID, updateDoc); err != nil {
		return nil, err
	}

	if target == models.BookingCompleted {
		// The trip is over: hand the crew and the vehicle back to the pool.
		// Best effort; a resource deleted in the interim never blocks
		// completion of the booking.
		s.Registry.SetEmployeesStatus(b.EmployeeAssigned, models.ResourceAvailable)
		s.Registry.SetVehicleStatus(b.VehicleID, models.ResourceAvailable)
	}

	return s.GetBooking(bookingID)
}

// AdminSetStatus is the administrative escape hatch. It sets any recognized
// status without checking the previous state and performs no resource sync;
// the price of entry is a status audit record on the booking.
func (s *DefaultBookingService) AdminSetStatus(
	ctx context.Context,
	bookingID string,
	target models.BookingStatus,
	actor Actor,
	note string,
) (*models.Booking, error) {
	if !target.IsValid() {
		return nil, NewValidationError("unrecognized status %q", string(target))
	}

	b, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}

	audit := models.StatusAuditEntry{
		From:  b.Status,
		To:    target,
		Actor: actor.ID,
		Note:  note,
		At:    time.Now(),
	}
	if err := s.Repo.PushDocument(bookingID, bson.M{"statusAudit": audit}); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateSetDocument(bookingID, bson.M{"status": target}); err != nil {
		return nil, err
	}

	utils.GetLogger().Warn("administrative status override",
		zap.String("tripNumber", b.TripNumber),
		zap.String("from", string(b.Status)),
		zap.String("to", string(target)),
		zap.String("actor", actor.ID))

	updated, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if s.Notify != nil {
		s.Notify.NotifyStatusOverride(ctx, updated, b.Status)
	}
	return updated, nil
}

// UpdateDriverLocation records the driver's position. Accepted only from a
// bound employee and only while the booking is In Transit.
func (s *DefaultBookingService) UpdateDriverLocation(
	bookingID string,
	actor Actor,
	latitude, longitude, accuracy float64,
) (*models.Booking, error) {
	if latitude < -90 || latitude > 90 {
		return nil, NewValidationError("latitude %v is out of range", latitude)
	}
	if longitude < -180 || longitude > 180 {
		return nil, NewValidationError("longitude %v is out of range", longitude)
	}

	b, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if !s.isBound(b, actor) {
		return nil, NewPreconditionError("only an assigned driver or helper can report location")
	}
	if b.Status != models.BookingInTransit {
		return nil, NewPreconditionError("location updates are only accepted while the booking is In Transit")
	}

	location := models.DriverLocation{
		Latitude:    latitude,
		Longitude:   longitude,
		Accuracy:    accuracy,
		LastUpdated: time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(bookingID, bson.M{"driverLocation": location}); err != nil {
		return nil, err
	}
	return s.GetBooking(bookingID)
}
