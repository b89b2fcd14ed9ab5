package notification

import (
	"context"
	"fmt"

	employeeRepo "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/employee"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService defines methods for sending FCM pushes to the crew of
// a booking. Every Notify* method is fail-soft: a missing token or a send
// failure is logged, never propagated.
type NotificationService interface {
	SendEmployeePushNotification(ctx context.Context, employeeID, title, body string, data map[string]string) error
	NotifyBookingAssigned(ctx context.Context, booking *models.Booking)
	NotifyVehicleChangeApproved(ctx context.Context, booking *models.Booking)
	NotifyStatusOverride(ctx context.Context, booking *models.Booking, from models.BookingStatus)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	EmployeeRepo employeeRepo.EmployeeRepository
}

// SendEmployeePushNotification looks up an employee's FCM token and sends a push.
func (s *DefaultNotificationService) SendEmployeePushNotification(
	ctx context.Context,
	employeeID, title, body string,
	data map[string]string,
) error {
	if utils.FCMClient == nil {
		return fmt.Errorf("SendEmployeePushNotification: push is not configured")
	}

	emp, err := s.EmployeeRepo.GetByEmployeeID(employeeID)
	if err != nil {
		return fmt.Errorf("SendEmployeePushNotification: could not find employee %s: %w", employeeID, err)
	}
	if emp == nil || emp.FCMToken == "" {
		return fmt.Errorf("SendEmployeePushNotification: employee %s has no FCM token", employeeID)
	}

	msg := &messaging.Message{
		Token: emp.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendEmployeePushNotification: failed to send FCM message: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) notifyCrew(ctx context.Context, booking *models.Booking, title, body string, data map[string]string) {
	logger := utils.GetLogger()
	for _, employeeID := range booking.EmployeeAssigned {
		if err := s.SendEmployeePushNotification(ctx, employeeID, title, body, data); err != nil {
			logger.Warn("notification: push not delivered",
				zap.String("employeeId", employeeID),
				zap.String("tripNumber", booking.TripNumber),
				zap.Error(err))
		}
	}
}

// NotifyBookingAssigned tells the crew a new trip was assigned to them.
func (s *DefaultNotificationService) NotifyBookingAssigned(ctx context.Context, booking *models.Booking) {
	title := "New trip assigned"
	body := fmt.Sprintf("Trip %s to %s is assigned to you.", booking.TripNumber, booking.DeliveryLocation)
	s.notifyCrew(ctx, booking, title, body, map[string]string{
		"type":      "booking_assigned",
		"bookingId": booking.ID,
	})
}

// NotifyVehicleChangeApproved tells the crew their vehicle swap was approved.
func (s *DefaultNotificationService) NotifyVehicleChangeApproved(ctx context.Context, booking *models.Booking) {
	title := "Vehicle change approved"
	body := fmt.Sprintf("Trip %s continues with vehicle %s (%s).", booking.TripNumber, booking.VehicleID, booking.PlateNumber)
	s.notifyCrew(ctx, booking, title, body, map[string]string{
		"type":      "vehicle_change_approved",
		"bookingId": booking.ID,
	})
}

// NotifyStatusOverride tells the crew the office corrected the trip status.
func (s *DefaultNotificationService) NotifyStatusOverride(ctx context.Context, booking *models.Booking, from models.BookingStatus) {
	title := "Trip status corrected"
	body := fmt.Sprintf("Trip %s was moved from %s to %s by the office.", booking.TripNumber, from, booking.Status)
	s.notifyCrew(ctx, booking, title, body, map[string]string{
		"type":      "status_override",
		"bookingId": booking.ID,
	})
}
