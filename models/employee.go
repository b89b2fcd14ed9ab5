package models

import "time"

// EmployeeRole constrains which bookings and mobile actions an employee may perform.
type EmployeeRole string

const (
	RoleDriver EmployeeRole = "Driver"
	RoleHelper EmployeeRole = "Helper"
)

// IsValid returns true if the role is recognized.
func (r EmployeeRole) IsValid() bool {
	return r == RoleDriver || r == RoleHelper
}

// Employee represents a driver or helper.
type Employee struct {
	EmployeeID   string         `bson:"employeeId" json:"employeeId"` // Human-readable identity (e.g. EMP001)
	FirstName    string         `bson:"firstName" json:"firstName"`
	LastName     string         `bson:"lastName" json:"lastName"`
	Role         EmployeeRole   `bson:"role" json:"role"`
	Phone        string         `bson:"phone,omitempty" json:"phone,omitempty"`
	Status       ResourceStatus `bson:"status" json:"status"`
	PasswordHash string         `bson:"passwordHash" json:"-"`
	TokenHash    string         `bson:"tokenHash,omitempty" json:"-"`
	FCMToken     string         `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// FullName returns the employee's display name.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
