package booking

import (
	"context"
	"time"

	counterRepo "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/counter"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CreateBooking validates the request, allocates the human-readable
// identifiers and inserts the booking with status Pending, then binds the
// referenced resources.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	if len(req.EmployeeAssigned) == 0 {
		return nil, NewValidationError("at least one employee must be assigned")
	}

	// Membership is bound once at creation, so unknown employees are refused
	// up front rather than left to dangle.
	employees, err := s.EmployeeRepo.GetByEmployeeIDs(req.EmployeeAssigned)
	if err != nil {
		return nil, err
	}
	if len(employees) != len(req.EmployeeAssigned) {
		return nil, NewValidationError("one or more assigned employees do not exist")
	}

	var vehicle *models.Vehicle
	if req.VehicleID != "" {
		vehicle, err = s.VehicleRepo.GetByVehicleID(req.VehicleID)
		if err != nil {
			return nil, err
		}
		if vehicle == nil {
			return nil, NewValidationError("vehicle %s does not exist", req.VehicleID)
		}
		if vehicle.Status != models.ResourceAvailable {
			return nil, NewPreconditionError("vehicle %s is not available", req.VehicleID)
		}
	}

	// A failed increment fails the whole creation; a fallback identifier
	// risks collision, which is worse than failure.
	resSeq, err := s.Counters.Next(ctx, counterRepo.SeqReservation)
	if err != nil {
		return nil, err
	}
	tripSeq, err := s.Counters.Next(ctx, counterRepo.SeqTrip)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &models.Booking{
		ID:               uuid.NewString(),
		ReservationID:    counterRepo.FormatReservationID(resSeq),
		TripNumber:       counterRepo.FormatTripNumber(tripSeq),
		Status:           models.BookingPending,
		ClientName:       req.ClientName,
		PickupLocation:   req.PickupLocation,
		DeliveryLocation: req.DeliveryLocation,
		DeliveryDate:     req.DeliveryDate,
		Remarks:          req.Remarks,
		VehicleType:      req.VehicleType,
		EmployeeAssigned: req.EmployeeAssigned,
	}

	historyEntry := models.VehicleHistoryEntry{
		VehicleType: req.VehicleType,
		StartedAt:   now,
		Status:      models.VehicleHistoryActive,
	}
	if vehicle != nil {
		booking.VehicleID = vehicle.VehicleID
		booking.PlateNumber = vehicle.PlateNumber
		historyEntry.VehicleID = vehicle.VehicleID
		historyEntry.PlateNumber = vehicle.PlateNumber
	}
	booking.VehicleHistory = []models.VehicleHistoryEntry{historyEntry}

	if err := s.Repo.Create(booking); err != nil {
		return nil, NewConflictError("booking could not be created: %v", err)
	}

	// Best-effort secondary writes: the booking is already the record of
	// truth, resource status mirrors it.
	s.Registry.SetEmployeesStatus(booking.EmployeeAssigned, models.ResourceOnTrip)
	s.Registry.SetVehicleStatus(booking.VehicleID, models.ResourceOnTrip)

	if s.Notify != nil {
		s.Notify.NotifyBookingAssigned(ctx, booking)
	}

	return booking, nil
}

// GetBooking retrieves a booking by its internal handle.
func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, NewNotFoundError("booking %s not found", id)
	}
	return b, nil
}

// ListBookings returns all non-archived bookings, newest first.
func (s *DefaultBookingService) ListBookings() ([]models.Booking, error) {
	return s.Repo.GetAll()
}

// ListArchived returns all archived bookings, newest first.
func (s *DefaultBookingService) ListArchived() ([]models.Booking, error) {
	return s.Repo.GetArchived()
}

// UpdateBooking edits non-status fields. A booking that is Ready to go or
// In Transit is frozen: the trip is physically underway and may only
// progress, report location, or go through the reassignment workflow.
func (s *DefaultBookingService) UpdateBooking(id string, req UpdateBookingRequest) (*models.Booking, error) {
	b, err := s.GetBooking(id)
	if err != nil {
		return nil, err
	}
	if b.Status.IsFrozen() {
		return nil, NewPreconditionError("booking %s is %s and cannot be edited", b.TripNumber, b.Status)
	}

	updateDoc := bson.M{}
	if req.ClientName != "" {
		updateDoc["clientName"] = req.ClientName
	}
	if req.PickupLocation != "" {
		updateDoc["pickupLocation"] = req.PickupLocation
	}
	if req.DeliveryLocation != "" {
		updateDoc["deliveryLocation"] = req.DeliveryLocation
	}
	if req.DeliveryDate != nil {
		updateDoc["deliveryDate"] = *req.DeliveryDate
	}
	if req.Remarks != nil {
		updateDoc["remarks"] = *req.Remarks
	}
	if len(updateDoc) == 0 {
		return nil, NewValidationError("no editable fields supplied")
	}

	if err := s.Repo.UpdateSetDocument(id, updateDoc); err != nil {
		return nil, err
	}
	return s.GetBooking(id)
}

// Archive hides a booking from the working set. Refused while the trip is
// actively moving; a booking underway cannot be hidden.
func (s *DefaultBookingService) Archive(id string) error {
	b, err := s.GetBooking(id)
	if err != nil {
		return err
	}
	if b.Status.IsFrozen() {
		return NewPreconditionError("cannot archive while booking is %s", b.Status)
	}
	return s.Repo.UpdateSetDocument(id, bson.M{"isArchived": true})
}

// Restore returns an archived booking to the working set.
func (s *DefaultBookingService) Restore(id string) error {
	if _, err := s.GetBooking(id); err != nil {
		return err
	}
	return s.Repo.UpdateSetDocument(id, bson.M{"isArchived": false})
}

// HardDelete removes a booking permanently. Administrative use only.
func (s *DefaultBookingService) HardDelete(id string) error {
	b, err := s.GetBooking(id)
	if err != nil {
		return err
	}
	utils.GetLogger().Info("booking hard delete",
		zap.String("id", b.ID),
		zap.String("tripNumber", b.TripNumber))
	return s.Repo.Delete(id)
}
