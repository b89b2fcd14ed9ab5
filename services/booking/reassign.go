package booking

import (
	"context"
	"time"

	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// RequestVehicleChange records a pending request to swap the booking's
// vehicle mid-trip. At most one request may be outstanding per booking.
func (s *DefaultBookingService) RequestVehicleChange(bookingID, reason string) (*models.Booking, error) {
	if reason == "" {
		return nil, NewValidationError("a reason for the vehicle change is required")
	}

	b, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status.IsTerminal() {
		return nil, NewPreconditionError("cannot request a vehicle change on a %s booking", b.Status)
	}
	if b.VehicleChangeRequest != nil && b.VehicleChangeRequest.Status == models.ChangeRequestPending {
		return nil, NewConflictError("a vehicle change request is already pending for booking %s", b.TripNumber)
	}

	request := models.VehicleChangeRequest{
		Requested:   true,
		Status:      models.ChangeRequestPending,
		Reason:      reason,
		RequestedAt: time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(bookingID, bson.M{"vehicleChangeRequest": request}); err != nil {
		return nil, err
	}
	return s.GetBooking(bookingID)
}

// ListPendingVehicleChanges returns all bookings with a pending request,
// newest first, enriched with the assigned employees for operator review.
func (s *DefaultBookingService) ListPendingVehicleChanges() ([]PendingVehicleChange, error) {
	bookings, err := s.Repo.GetPendingVehicleChanges()
	if err != nil {
		return nil, err
	}

	pending := make([]PendingVehicleChange, 0, len(bookings))
	for _, b := range bookings {
		employees, err := s.EmployeeRepo.GetByEmployeeIDs(b.EmployeeAssigned)
		if err != nil {
			return nil, err
		}
		pending = append(pending, PendingVehicleChange{Booking: b, Employees: employees})
	}
	return pending, nil
}

// ApproveVehicleChange swaps the booking onto the target vehicle. The full
// write set — two history appends, the live vehicle fields, the request
// approval and both vehicle status updates — is one transactional unit; a
// half-applied swap is the worst failure mode of this subsystem.
func (s *DefaultBookingService) ApproveVehicleChange(ctx context.Context, bookingID, newVehicleID string) (*models.Booking, error) {
	b, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if b.VehicleChangeRequest == nil || b.VehicleChangeRequest.Status != models.ChangeRequestPending {
		return nil, NewPreconditionError("booking %s has no pending vehicle change request", b.TripNumber)
	}

	newVehicle, err := s.VehicleRepo.GetByVehicleID(newVehicleID)
	if err != nil {
		return nil, err
	}
	if newVehicle == nil {
		return nil, NewNotFoundError("vehicle %s not found", newVehicleID)
	}
	if newVehicle.Status != models.ResourceAvailable {
		return nil, NewPreconditionError("vehicle %s is not available", newVehicleID)
	}

	now := time.Now()
	endedAt := now
	outgoing := models.VehicleHistoryEntry{
		VehicleID:   b.VehicleID,
		VehicleType: b.VehicleType,
		PlateNumber: b.PlateNumber,
		StartedAt:   b.CreatedAt,
		EndedAt:     &endedAt,
		Reason:      b.VehicleChangeRequest.Reason,
		Status:      models.VehicleHistoryReplaced,
	}
	incoming := models.VehicleHistoryEntry{
		VehicleID:   newVehicle.VehicleID,
		VehicleType: newVehicle.VehicleType,
		PlateNumber: newVehicle.PlateNumber,
		StartedAt:   now,
		Status:      models.VehicleHistoryActive,
	}

	if err := s.Repo.ApproveVehicleChange(ctx, bookingID, outgoing, incoming); err != nil {
		partial := &PartialApplicationError{
			Message: "vehicle change for booking " + b.TripNumber + " did not apply cleanly; verify vehicle and booking consistency",
			Err:     err,
		}
		utils.GetLogger().Error("vehicle change approval failed",
			zap.String("tripNumber", b.TripNumber),
			zap.String("newVehicleId", newVehicleID),
			zap.Error(err))
		return nil, partial
	}

	updated, err := s.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if s.Notify != nil {
		s.Notify.NotifyVehicleChangeApproved(ctx, updated)
	}
	return updated, nil
}
