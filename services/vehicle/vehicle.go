// File: services/vehicle/vehicle.go
package vehicle

import (
	"context"

	counterRepo "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/counter"
	vehicleRepo "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/vehicle"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/booking"

	"go.mongodb.org/mongo-driver/bson"
)

// CreateVehicleRequest carries the fields for fleet registration.
type CreateVehicleRequest struct {
	VehicleType        string `json:"vehicleType" binding:"required"`
	Brand              string `json:"brand" binding:"required"`
	PlateNumber        string `json:"plateNumber" binding:"required"`
	RegistrationNumber string `json:"registrationNumber" binding:"required"`
}

// UpdateVehicleRequest carries the editable fields. Status is deliberately
// absent: a vehicle's availability is owned by the booking lifecycle, with
// SetAvailability as the explicit maintenance override.
type UpdateVehicleRequest struct {
	VehicleType        string `json:"vehicleType"`
	Brand              string `json:"brand"`
	PlateNumber        string `json:"plateNumber"`
	RegistrationNumber string `json:"registrationNumber"`
}

// VehicleService manages the fleet roster.
type VehicleService interface {
	CreateVehicle(ctx context.Context, req CreateVehicleRequest) (*models.Vehicle, error)
	GetVehicle(vehicleID string) (*models.Vehicle, error)
	ListVehicles() ([]models.Vehicle, error)
	UpdateVehicle(vehicleID string, req UpdateVehicleRequest) (*models.Vehicle, error)
	// SetAvailability toggles a vehicle between Available and Not Available
	// for maintenance. It never touches a vehicle that is On Trip.
	SetAvailability(vehicleID string, status models.ResourceStatus) (*models.Vehicle, error)
	DeleteVehicle(vehicleID string) error
}

// DefaultVehicleService is the production implementation.
type DefaultVehicleService struct {
	Repo     vehicleRepo.VehicleRepository
	Counters counterRepo.CounterRepository
}

func (s *DefaultVehicleService) CreateVehicle(ctx context.Context, req CreateVehicleRequest) (*models.Vehicle, error) {
	exists, err := s.Repo.ExistsPlateOrRegistration(req.PlateNumber, req.RegistrationNumber, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, booking.NewConflictError("a vehicle with plate %s or registration %s already exists",
			req.PlateNumber, req.RegistrationNumber)
	}

	seq, err := s.Counters.Next(ctx, counterRepo.SeqVehicle)
	if err != nil {
		return nil, err
	}

	v := &models.Vehicle{
		VehicleID:          counterRepo.FormatVehicleID(seq),
		VehicleType:        req.VehicleType,
		Brand:              req.Brand,
		PlateNumber:        req.PlateNumber,
		RegistrationNumber: req.RegistrationNumber,
		Status:             models.ResourceAvailable,
	}
	if err := s.Repo.Create(v); err != nil {
		return nil, booking.NewConflictError("vehicle could not be created: %v", err)
	}
	return v, nil
}

func (s *DefaultVehicleService) GetVehicle(vehicleID string) (*models.Vehicle, error) {
	v, err := s.Repo.GetByVehicleID(vehicleID)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, booking.NewNotFoundError("vehicle %s not found", vehicleID)
	}
	return v, nil
}

func (s *DefaultVehicleService) ListVehicles() ([]models.Vehicle, error) {
	return s.Repo.GetAll()
}

func (s *DefaultVehicleService) UpdateVehicle(vehicleID string, req UpdateVehicleRequest) (*models.Vehicle, error) {
	if _, err := s.GetVehicle(vehicleID); err != nil {
		return nil, err
	}

	if req.PlateNumber != "" || req.RegistrationNumber != "" {
		exists, err := s.Repo.ExistsPlateOrRegistration(req.PlateNumber, req.RegistrationNumber, vehicleID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, booking.NewConflictError("plate or registration number already in use by another vehicle")
		}
	}

	updateDoc := bson.M{}
	if req.VehicleType != "" {
		updateDoc["vehicleType"] = req.VehicleType
	}
	if req.Brand != "" {
		updateDoc["brand"] = req.Brand
	}
	if req.PlateNumber != "" {
		updateDoc["plateNumber"] = req.PlateNumber
	}
	if req.RegistrationNumber != "" {
		updateDoc["registrationNumber"] = req.RegistrationNumber
	}
	if len(updateDoc) == 0 {
		return nil, booking.NewValidationError("no editable fields supplied")
	}

	if err := s.Repo.UpdateSetDocument(vehicleID, updateDoc); err != nil {
		return nil, err
	}
	return s.GetVehicle(vehicleID)
}

func (s *DefaultVehicleService) SetAvailability(vehicleID string, status models.ResourceStatus) (*models.Vehicle, error) {
	if status != models.ResourceAvailable && status != models.ResourceNotAvailable {
		return nil, booking.NewValidationError("availability must be %s or %s",
			models.ResourceAvailable, models.ResourceNotAvailable)
	}

	v, err := s.GetVehicle(vehicleID)
	if err != nil {
		return nil, err
	}
	if v.Status == models.ResourceOnTrip {
		return nil, booking.NewPreconditionError("vehicle %s is on an active trip; its status follows the booking", vehicleID)
	}

	if _, err := s.Repo.SetStatus(vehicleID, status); err != nil {
		return nil, err
	}
	return s.GetVehicle(vehicleID)
}

func (s *DefaultVehicleService) DeleteVehicle(vehicleID string) error {
	v, err := s.GetVehicle(vehicleID)
	if err != nil {
		return err
	}
	if v.Status == models.ResourceOnTrip {
		return booking.NewPreconditionError("vehicle %s is on an active trip and cannot be deleted", vehicleID)
	}
	return s.Repo.Delete(vehicleID)
}
