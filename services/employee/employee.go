// File: services/employee/employee.go
package employee

import (
	"context"

	counterRepo "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/counter"
	employeeRepo "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/employee"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/booking"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// CreateEmployeeRequest carries the fields for onboarding a crew member.
type CreateEmployeeRequest struct {
	FirstName string              `json:"firstName" binding:"required"`
	LastName  string              `json:"lastName" binding:"required"`
	Role      models.EmployeeRole `json:"role" binding:"required"`
	Phone     string              `json:"phone"`
	Password  string              `json:"password" binding:"required"`
}

// UpdateEmployeeRequest carries the editable profile fields. Status is owned
// by the booking lifecycle and is not editable here.
type UpdateEmployeeRequest struct {
	FirstName string              `json:"firstName"`
	LastName  string              `json:"lastName"`
	Role      models.EmployeeRole `json:"role"`
	Phone     string              `json:"phone"`
}

// EmployeeService manages the crew roster.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*models.Employee, error)
	GetEmployee(employeeID string) (*models.Employee, error)
	ListEmployees() ([]models.Employee, error)
	UpdateEmployee(employeeID string, req UpdateEmployeeRequest) (*models.Employee, error)
	// SetAvailability toggles a crew member between Available and Not
	// Available (leave, sickness). It never touches someone who is On Trip.
	SetAvailability(employeeID string, status models.ResourceStatus) (*models.Employee, error)
	DeleteEmployee(employeeID string) error
}

// DefaultEmployeeService is the production implementation.
type DefaultEmployeeService struct {
	Repo     employeeRepo.EmployeeRepository
	Counters counterRepo.CounterRepository
}

func (s *DefaultEmployeeService) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*models.Employee, error) {
	if !req.Role.IsValid() {
		return nil, booking.NewValidationError("role must be %s or %s", models.RoleDriver, models.RoleHelper)
	}
	if len(req.Password) < 8 {
		return nil, booking.NewValidationError("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	seq, err := s.Counters.Next(ctx, counterRepo.SeqEmployee)
	if err != nil {
		return nil, err
	}

	emp := &models.Employee{
		EmployeeID:   counterRepo.FormatEmployeeID(seq),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		Phone:        req.Phone,
		Status:       models.ResourceAvailable,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(emp); err != nil {
		return nil, booking.NewConflictError("employee could not be created: %v", err)
	}
	return emp, nil
}

func (s *DefaultEmployeeService) GetEmployee(employeeID string) (*models.Employee, error) {
	emp, err := s.Repo.GetByEmployeeID(employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, booking.NewNotFoundError("employee %s not found", employeeID)
	}
	return emp, nil
}

func (s *DefaultEmployeeService) ListEmployees() ([]models.Employee, error) {
	return s.Repo.GetAll()
}

func (s *DefaultEmployeeService) UpdateEmployee(employeeID string, req UpdateEmployeeRequest) (*models.Employee, error) {
	if _, err := s.GetEmployee(employeeID); err != nil {
		return nil, err
	}

	updateDoc := bson.M{}
	if req.FirstName != "" {
		updateDoc["firstName"] = req.FirstName
	}
	if req.LastName != "" {
		updateDoc["lastName"] = req.LastName
	}
	if req.Role != "" {
		if !req.Role.IsValid() {
			return nil, booking.NewValidationError("role must be %s or %s", models.RoleDriver, models.RoleHelper)
		}
		updateDoc["role"] = req.Role
	}
	if req.Phone != "" {
		updateDoc["phone"] = req.Phone
	}
	if len(updateDoc) == 0 {
		return nil, booking.NewValidationError("no editable fields supplied")
	}

	if err := s.Repo.UpdateSetDocument(employeeID, updateDoc); err != nil {
		return nil, err
	}
	return s.GetEmployee(employeeID)
}

func (s *DefaultEmployeeService) SetAvailability(employeeID string, status models.ResourceStatus) (*models.Employee, error) {
	if status != models.ResourceAvailable && status != models.ResourceNotAvailable {
		return nil, booking.NewValidationError("availability must be %s or %s",
			models.ResourceAvailable, models.ResourceNotAvailable)
	}

	emp, err := s.GetEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	if emp.Status == models.ResourceOnTrip {
		return nil, booking.NewPreconditionError("employee %s is on an active trip; their status follows the booking", employeeID)
	}

	if _, err := s.Repo.SetStatusMany([]string{employeeID}, status); err != nil {
		return nil, err
	}
	return s.GetEmployee(employeeID)
}

func (s *DefaultEmployeeService) DeleteEmployee(employeeID string) error {
	emp, err := s.GetEmployee(employeeID)
	if err != nil {
		return err
	}
	if emp.Status == models.ResourceOnTrip {
		return booking.NewPreconditionError("employee %s is on an active trip and cannot be deleted", employeeID)
	}
	return s.Repo.Delete(employeeID)
}
