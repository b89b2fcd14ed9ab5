// File: handlers/bundle.go
package handlers

import (
	employeeRepoPkg "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/employee"
	userRepoPkg "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct. The repos are
// carried alongside so route registration can build the auth middleware.
type HandlerBundle struct {
	UserRepo     userRepoPkg.UserRepository
	EmployeeRepo employeeRepoPkg.EmployeeRepository

	// Auth endpoints
	OfficeLoginHandler   gin.HandlerFunc
	EmployeeLoginHandler gin.HandlerFunc
	RegisterUserHandler  gin.HandlerFunc
	RevokeHandler        gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler             gin.HandlerFunc
	GetBookingHandler                gin.HandlerFunc
	ListBookingsHandler              gin.HandlerFunc
	ListArchivedHandler              gin.HandlerFunc
	UpdateBookingHandler             gin.HandlerFunc
	TransitionHandler                gin.HandlerFunc
	AdminSetStatusHandler            gin.HandlerFunc
	ArchiveBookingHandler            gin.HandlerFunc
	RestoreBookingHandler            gin.HandlerFunc
	DeleteBookingHandler             gin.HandlerFunc
	RequestVehicleChangeHandler      gin.HandlerFunc
	ListPendingVehicleChangesHandler gin.HandlerFunc
	ApproveVehicleChangeHandler      gin.HandlerFunc
	ProofDownloadURLHandler          gin.HandlerFunc

	// Mobile endpoints
	AssignedBookingsHandler gin.HandlerFunc
	ProgressHandler         gin.HandlerFunc
	ReportLocationHandler   gin.HandlerFunc
	UpdateFCMTokenHandler   gin.HandlerFunc

	// Fleet endpoints
	CreateVehicleHandler          gin.HandlerFunc
	GetVehicleHandler             gin.HandlerFunc
	ListVehiclesHandler           gin.HandlerFunc
	UpdateVehicleHandler          gin.HandlerFunc
	SetVehicleAvailabilityHandler gin.HandlerFunc
	DeleteVehicleHandler          gin.HandlerFunc

	// Crew endpoints
	CreateEmployeeHandler          gin.HandlerFunc
	GetEmployeeHandler             gin.HandlerFunc
	ListEmployeesHandler           gin.HandlerFunc
	UpdateEmployeeHandler          gin.HandlerFunc
	SetEmployeeAvailabilityHandler gin.HandlerFunc
	DeleteEmployeeHandler          gin.HandlerFunc
}
