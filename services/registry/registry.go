// File: services/registry/registry.go
package registry

import (
	employeeRepo "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/employee"
	vehicleRepo "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/vehicle"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/utils"

	"go.uber.org/zap"
)

// RegistryService keeps vehicle and employee availability in lock-step with
// the bookings that reference them. Every write here is a best-effort
// secondary write: the booking is the source of truth, so a missing resource
// is logged and never fails the caller's primary operation.
type RegistryService interface {
	// SetVehicleStatus applies the status to the vehicle. Idempotent; a
	// dangling reference is logged and swallowed. Empty vehicleID is a no-op.
	SetVehicleStatus(vehicleID string, status models.ResourceStatus)
	// SetEmployeesStatus applies the status to the set of employees.
	// Idempotent; dangling references are logged and swallowed.
	SetEmployeesStatus(employeeIDs []string, status models.ResourceStatus)
}

// DefaultRegistryService is the production implementation.
type DefaultRegistryService struct {
	VehicleRepo  vehicleRepo.VehicleRepository
	EmployeeRepo employeeRepo.EmployeeRepository
}

func (s *DefaultRegistryService) SetVehicleStatus(vehicleID string, status models.ResourceStatus) {
	if vehicleID == "" {
		return
	}
	logger := utils.GetLogger()

	matched, err := s.VehicleRepo.SetStatus(vehicleID, status)
	if err != nil {
		logger.Warn("registry: vehicle status sync failed",
			zap.String("vehicleId", vehicleID),
			zap.String("status", string(status)),
			zap.Error(err))
		return
	}
	if matched == 0 {
		logger.Warn("registry: dangling vehicle reference, status not applied",
			zap.String("vehicleId", vehicleID),
			zap.String("status", string(status)))
	}
}

func (s *DefaultRegistryService) SetEmployeesStatus(employeeIDs []string, status models.ResourceStatus) {
	if len(employeeIDs) == 0 {
		return
	}
	logger := utils.GetLogger()

	matched, err := s.EmployeeRepo.SetStatusMany(employeeIDs, status)
	if err != nil {
		logger.Warn("registry: employee status sync failed",
			zap.Strings("employeeIds", employeeIDs),
			zap.String("status", string(status)),
			zap.Error(err))
		return
	}
	if matched < int64(len(employeeIDs)) {
		logger.Warn("registry: dangling employee reference(s), status applied partially",
			zap.Strings("employeeIds", employeeIDs),
			zap.Int64("matched", matched),
			zap.String("status", string(status)))
	}
}
