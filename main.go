// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jpcunanan716/bestaccord-transportation-sub000/config"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/cron"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/database"
	bookingRepoPkg "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/booking"
	counterRepoPkg "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/counter"
	employeeRepoPkg "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/employee"
	userRepoPkg "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/user"
	vehicleRepoPkg "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/vehicle"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/handlers"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/middleware"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/routes"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/auth"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/booking"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/employee"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/mobile"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/notification"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/registry"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/services/vehicle"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	vehicleRepo := vehicleRepoPkg.NewMongoVehicleRepo()
	employeeRepo := employeeRepoPkg.NewMongoEmployeeRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	counterRepo := counterRepoPkg.NewMongoCounterRepo()

	// services.
	registryService := &registry.DefaultRegistryService{
		VehicleRepo:  vehicleRepo,
		EmployeeRepo: employeeRepo,
	}
	notificationService := &notification.DefaultNotificationService{
		EmployeeRepo: employeeRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		VehicleRepo:  vehicleRepo,
		EmployeeRepo: employeeRepo,
		Counters:     counterRepo,
		Registry:     registryService,
		Storage:      storageService,
		Notify:       notificationService,
	}
	mobileService := &mobile.DefaultMobileService{
		Bookings:     bookingService,
		Repo:         bookingRepo,
		EmployeeRepo: employeeRepo,
	}
	vehicleService := &vehicle.DefaultVehicleService{
		Repo:     vehicleRepo,
		Counters: counterRepo,
	}
	employeeService := &employee.DefaultEmployeeService{
		Repo:     employeeRepo,
		Counters: counterRepo,
	}
	authService := &auth.DefaultAuthService{
		Users:     userRepo,
		Employees: employeeRepo,
	}

	// handlers.
	bookingHandler := &handlers.BookingHandler{Service: bookingService}
	mobileHandler := &handlers.MobileHandler{Service: mobileService}
	vehicleHandler := &handlers.VehicleHandler{Service: vehicleService}
	employeeHandler := &handlers.EmployeeHandler{Service: employeeService}
	authHandler := &handlers.AuthHandler{Service: authService}
	storageHandler := &handlers.StorageHandler{Bookings: bookingService, Storage: storageService}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:     userRepo,
		EmployeeRepo: employeeRepo,

		// Auth endpoints.
		OfficeLoginHandler:   authHandler.OfficeLoginHandler,
		EmployeeLoginHandler: authHandler.EmployeeLoginHandler,
		RegisterUserHandler:  authHandler.RegisterUserHandler,
		RevokeHandler:        authHandler.RevokeHandler,

		// Booking endpoints.
		CreateBookingHandler:             bookingHandler.CreateBookingHandler,
		GetBookingHandler:                bookingHandler.GetBookingHandler,
		ListBookingsHandler:              bookingHandler.ListBookingsHandler,
		ListArchivedHandler:              bookingHandler.ListArchivedHandler,
		UpdateBookingHandler:             bookingHandler.UpdateBookingHandler,
		TransitionHandler:                bookingHandler.TransitionHandler,
		AdminSetStatusHandler:            bookingHandler.AdminSetStatusHandler,
		ArchiveBookingHandler:            bookingHandler.ArchiveBookingHandler,
		RestoreBookingHandler:            bookingHandler.RestoreBookingHandler,
		DeleteBookingHandler:             bookingHandler.DeleteBookingHandler,
		RequestVehicleChangeHandler:      bookingHandler.RequestVehicleChangeHandler,
		ListPendingVehicleChangesHandler: bookingHandler.ListPendingVehicleChangesHandler,
		ApproveVehicleChangeHandler:      bookingHandler.ApproveVehicleChangeHandler,
		ProofDownloadURLHandler:          storageHandler.ProofDownloadURLHandler,

		// Mobile endpoints.
		AssignedBookingsHandler: mobileHandler.AssignedBookingsHandler,
		ProgressHandler:         mobileHandler.ProgressHandler,
		ReportLocationHandler:   mobileHandler.ReportLocationHandler,
		UpdateFCMTokenHandler:   mobileHandler.UpdateFCMTokenHandler,

		// Fleet endpoints.
		CreateVehicleHandler:          vehicleHandler.CreateVehicleHandler,
		GetVehicleHandler:             vehicleHandler.GetVehicleHandler,
		ListVehiclesHandler:           vehicleHandler.ListVehiclesHandler,
		UpdateVehicleHandler:          vehicleHandler.UpdateVehicleHandler,
		SetVehicleAvailabilityHandler: vehicleHandler.SetVehicleAvailabilityHandler,
		DeleteVehicleHandler:          vehicleHandler.DeleteVehicleHandler,

		// Crew endpoints.
		CreateEmployeeHandler:          employeeHandler.CreateEmployeeHandler,
		GetEmployeeHandler:             employeeHandler.GetEmployeeHandler,
		ListEmployeesHandler:           employeeHandler.ListEmployeesHandler,
		UpdateEmployeeHandler:          employeeHandler.UpdateEmployeeHandler,
		SetEmployeeAvailabilityHandler: employeeHandler.SetEmployeeAvailabilityHandler,
		DeleteEmployeeHandler:          employeeHandler.DeleteEmployeeHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.StartJanitor(bookingRepo)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
