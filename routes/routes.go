// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"github.com/jpcunanan716/bestaccord-transportation-sub000/handlers"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/middleware"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.OfficeLoginHandler)
		api.POST("/employee-login", hb.EmployeeLoginHandler)

		office := api.Group("")
		office.Use(middleware.JWTAuthOfficeMiddleware(hb.UserRepo))
		office.DELETE("/revoke", hb.RevokeHandler)
		office.POST("/register", middleware.RequireAdmin(), hb.RegisterUserHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints for the
// office dashboard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthOfficeMiddleware(hb.UserRepo))
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
		api.GET("/archived", hb.ListArchivedHandler)
		api.GET("/vehicle-changes", hb.ListPendingVehicleChangesHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.PATCH("/:id", hb.UpdateBookingHandler)
		api.PUT("/:id/status", hb.TransitionHandler)
		api.PUT("/:id/archive", hb.ArchiveBookingHandler)
		api.PUT("/:id/restore", hb.RestoreBookingHandler)
		api.GET("/:id/proof-url", hb.ProofDownloadURLHandler)
		api.POST("/:id/vehicle-change", hb.RequestVehicleChangeHandler)
		api.PUT("/:id/vehicle-change/approve", hb.ApproveVehicleChangeHandler)

		// Destructive and override operations require the admin role.
		api.PUT("/:id/admin-status", middleware.RequireAdmin(), hb.AdminSetStatusHandler)
		api.DELETE("/:id", middleware.RequireAdmin(), hb.DeleteBookingHandler)
	}
}

// RegisterMobileRoutes registers the driver app endpoints.
func RegisterMobileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/mobile")
	{
		api.Use(middleware.JWTAuthEmployeeMiddleware(hb.EmployeeRepo))
		api.GET("/bookings", hb.AssignedBookingsHandler)
		api.PUT("/bookings/:id/status", hb.ProgressHandler)
		api.PUT("/bookings/:id/location", hb.ReportLocationHandler)
		api.PUT("/fcm-token", hb.UpdateFCMTokenHandler)
	}
}

// RegisterVehicleRoutes registers fleet management endpoints.
func RegisterVehicleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vehicles")
	{
		api.Use(middleware.JWTAuthOfficeMiddleware(hb.UserRepo))
		api.POST("", hb.CreateVehicleHandler)
		api.GET("", hb.ListVehiclesHandler)
		api.GET("/:id", hb.GetVehicleHandler)
		api.PATCH("/:id", hb.UpdateVehicleHandler)
		api.PUT("/:id/availability", hb.SetVehicleAvailabilityHandler)
		api.DELETE("/:id", middleware.RequireAdmin(), hb.DeleteVehicleHandler)
	}
}

// RegisterEmployeeRoutes registers crew management endpoints.
func RegisterEmployeeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/employees")
	{
		api.Use(middleware.JWTAuthOfficeMiddleware(hb.UserRepo))
		api.POST("", hb.CreateEmployeeHandler)
		api.GET("", hb.ListEmployeesHandler)
		api.GET("/:id", hb.GetEmployeeHandler)
		api.PATCH("/:id", hb.UpdateEmployeeHandler)
		api.PUT("/:id/availability", hb.SetEmployeeAvailabilityHandler)
		api.DELETE("/:id", middleware.RequireAdmin(), hb.DeleteEmployeeHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterMobileRoutes(r, hb)
	RegisterVehicleRoutes(r, hb)
	RegisterEmployeeRoutes(r, hb)
	RegisterHealthRoute(r)
}
