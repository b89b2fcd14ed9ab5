package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"
)

func mustCreateBooking(t *testing.T, env *testEnv, vehicleID string, employeeIDs []string) *models.Booking {
	t.Helper()
	b, err := env.svc.CreateBooking(context.Background(), CreateBookingRequest{
		ClientName:       "Mega Hardware Inc",
		PickupLocation:   "Quezon City Warehouse",
		DeliveryLocation: "Batangas Port",
		DeliveryDate:     time.Now().Add(48 * time.Hour),
		VehicleType:      "6-Wheeler",
		VehicleID:        vehicleID,
		EmployeeAssigned: employeeIDs,
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	return b
}

func TestFullLifecycle(t *testing.T) {
	env := newTestEnv(
		[]*models.Vehicle{availableVehicle("V001", "ABC-1234")},
		[]*models.Employee{availableDriver("EMP001"), availableDriver("EMP002")},
	)
	ctx := context.Background()
	driver := Actor{ID: "EMP001", Role: "Driver"}
	office := Actor{ID: "u-1", Role: "staff"}

	b := mustCreateBooking(t, env, "V001", []string{"EMP001", "EMP002"})

	if b.Status != models.BookingPending {
		t.Fatalf("new booking status = %s, want %s", b.Status, models.BookingPending)
	}
	if got := env.vehicles.statusOf("V001"); got != models.ResourceOnTrip {
		t.Errorf("vehicle status after create = %s, want %s", got, models.ResourceOnTrip)
	}
	if got := env.employees.statusOf("EMP002"); got != models.ResourceOnTrip {
		t.Errorf("employee status after create = %s, want %s", got, models.ResourceOnTrip)
	}
	if len(b.VehicleHistory) != 1 || b.VehicleHistory[0].Status != models.VehicleHistoryActive {
		t.Fatalf("expected one active vehicle history entry, got %+v", b.VehicleHistory)
	}

	b, err := env.svc.Transition(ctx, b.ID, models.BookingReadyToGo, office, TransitionOptions{})
	if err != nil {
		t.Fatalf("transition to Ready to go: %v", err)
	}

	b, err = env.svc.Transition(ctx, b.ID, models.BookingInTransit, driver, TransitionOptions{})
	if err != nil {
		t.Fatalf("transition to In Transit: %v", err)
	}

	b, err = env.svc.Transition(ctx, b.ID, models.BookingDelivered, driver, TransitionOptions{
		Proof: &ProofPayload{Data: testProofData},
	})
	if err != nil {
		t.Fatalf("transition to Delivered: %v", err)
	}
	if b.ProofOfDelivery == nil || b.ProofOfDelivery.PublicID == "" {
		t.Fatal("expected proof of delivery document after Delivered")
	}
	if b.ProofOfDelivery.MimeType != "image/png" {
		t.Errorf("proof mime type = %s, want image/png", b.ProofOfDelivery.MimeType)
	}

	b, err = env.svc.Transition(ctx, b.ID, models.BookingCompleted, office, TransitionOptions{})
	if err != nil {
		t.Fatalf("transition to Completed: %v", err)
	}
	if got := env.vehicles.statusOf("V001"); got != models.ResourceAvailable {
		t.Errorf("vehicle status after completion = %s, want %s", got, models.ResourceAvailable)
	}
	for _, id := range []string{"EMP001", "EMP002"} {
		if got := env.employees.statusOf(id); got != models.ResourceAvailable {
			t.Errorf("employee %s status after completion = %s, want %s", id, got, models.ResourceAvailable)
		}
	}
}

func TestTransitionRejectsSkipsAndBackwardMoves(t *testing.T) {
	env := newTestEnv(
		[]*models.Vehicle{availableVehicle("V001", "ABC-1234")},
		[]*models.Employee{availableDriver("EMP001")},
	)
	ctx := context.Background()
	office := Actor{ID: "u-1", Role: "staff"}
	b := mustCreateBooking(t, env, "V001", []string{"EMP001"})

	tests := []struct {
		name   string
		target models.BookingStatus
	}{
		{"skip to In Transit", models.BookingInTransit},
		{"skip to Delivered", models.BookingDelivered},
		{"skip to Completed", models.BookingCompleted},
		{"same status", models.BookingPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.Transition(ctx, b.ID, tt.target, office, TransitionOptions{})
			var pre *PreconditionError
			if !errors.As(err, &pre) {
				t.Fatalf("transition Pending -> %s: err = %v, want PreconditionError", tt.target, err)
			}
		})
	}

	if _, err := env.svc.Transition(ctx, b.ID, "Loading", office, TransitionOptions{}); err == nil {
		t.Fatal("expected error for unrecognized status")
	} else {
		var v *ValidationError
		if !errors.As(err, &v) {
			t.Fatalf("unrecognized status err = %v, want ValidationError", err)
		}
	}

	// Backward move from Ready to go.
	if _, err := env.svc.Transition(ctx, b.ID, models.BookingReadyToGo, office, TransitionOptions{}); err != nil {
		t.Fatalf("transition to Ready to go: %v", err)
	}
	_, err := env.svc.Transition(ctx, b.ID, models.BookingPending, office, TransitionOptions{})
	var pre *PreconditionError
	if !errors.As(err, &pre) {
		t.Fatalf("backward transition err = %v, want PreconditionError", err)
	}
}

func TestInTransitRequiresBoundActor(t *testing.T) {
	env := newTestEnv(
		[]*models.Vehicle{availableVehicle("V001", "ABC-1234")},
		[]*models.Employee{availableDriver("EMP001"), availableDriver("EMP009")},
	)
	ctx := context.Background()
	b := mustCreateBooking(t, env, "V001", []string{"EMP001"})

	if _, err := env.svc.Transition(ctx, b.ID, models.BookingReadyToGo, Actor{ID: "u-1", Role: "staff"}, TransitionOptions{}); err != nil {
		t.Fatalf("transition to Ready to go: %v", err)
	}

	_, err := env.svc.Transition(ctx, b.ID, models.BookingInTransit, Actor{ID: "EMP009", Role: "Driver"}, TransitionOptions{})
	var pre *PreconditionError
	if !errors.As(err, &pre) {
		t.Fatalf("unbound actor starting transit: err = %v, want PreconditionError", err)
	}

	if _, err := env.svc.Transition(ctx, b.ID, models.BookingInTransit, Actor{ID: "EMP001", Role: "Driver"}, TransitionOptions{}); err != nil {
		t.Fatalf("bound actor starting transit: %v", err)
	}
}

func TestDeliveredRequiresProof(t *testing.T) {
	env := newTestEnv(
		[]*models.Vehicle{availableVehicle("V001", "ABC-1234")},
		[]*models.Employee{availableDriver("EMP001")},
	)
	ctx := context.Background()
	driver := Actor{ID: "EMP001", Role: "Driver"}
	office := Actor{ID: "u-1", Role: "staff"}
	b := mustCreateBooking(t, env, "V001", []string{"EMP001"})

	for _, target := range []models.BookingStatus{models.BookingReadyToGo, models.BookingInTransit} {
		if _, err := env.svc.Transition(ctx, b.ID, target, driver, TransitionOptions{}); err != nil {
			t.Fatalf("transition to %s: %v", target, err)
		}
	}

	_, err := env.svc.Transition(ctx, b.ID, models.BookingDelivered, office, TransitionOptions{})
	var v *ValidationError
	if !errors.As(err, &v) {
		t.Fatalf("Delivered without proof: err = %v, want ValidationError", err)
	}

	// The failed attempt must not have moved the status.
	current, err := env.svc.GetBooking(b.ID)
	if err != nil {
		t.Fatalf("GetBooking: %v", err)
	}
	if current.Status != models.BookingInTransit {
		t.Fatalf("status after failed delivery = %s, want %s", current.Status, models.BookingInTransit)
	}
}

func TestCompletionSurvivesDanglingResources(t *testing.T) {
	env := newTestEnv(
		[]*models.Vehicle{availableVehicle("V001", "ABC-1234")},
		[]*models.Employee{availableDriver("EMP001")},
	)
	ctx := context.Background()
	driver := Actor{ID: "EMP001", Role: "Driver"}
	b := mustCreateBooking(t, env, "V001", []string{"EMP001"})

	for _, target := range []models.BookingStatus{models.BookingReadyToGo, models.BookingInTransit} {
		if _, err := env.svc.Transition(ctx, b.ID, target, driver, TransitionOptions{}); err != nil {
			t.Fatalf("transition to %s: %v", target, err)
		}
	}
	if _, err := env.svc.Transition(ctx, b.ID, models.BookingDelivered, driver, TransitionOptions{
		Proof: &ProofPayload{Data: testProofData},
	}); err != nil {
		t.Fatalf("transition to Delivered: %v", err)
	}

	// Delete the vehicle and the employee out from under the booking.
	if err := env.vehicles.Delete("V001"); err != nil {
		t.Fatalf("delete vehicle: %v", err)
	}
	if err := env.employees.Delete("EMP001"); err != nil {
		t.Fatalf("delete employee: %v", err)
	}

	b, err := env.svc.Transition(ctx, b.ID, models.BookingCompleted, driver, TransitionOptions{})
	if err != nil {
		t.Fatalf("completion with dangling resources: %v", err)
	}
	if b.Status != models.BookingCompleted {
		t.Fatalf("status = %s, want %s", b.Status, models.BookingCompleted)
	}
}

func TestAdminSetStatusRecordsAudit(t *testing.T) {
	env := newTestEnv(
		[]*models.Vehicle{availableVehicle("V001", "ABC-1234")},
		[]*models.Employee{availableDriver("EMP001")},
	)
	ctx := context.Background()
	admin := Actor{ID: "admin-1", Role: "admin"}
	b := mustCreateBooking(t, env, "V001", []string{"EMP001"})

	// Jump straight to Delivered, skipping the chain.
	updated, err := env.svc.AdminSetStatus(ctx, b.ID, models.BookingDelivered, admin, "paperwork caught up after the fact")
	if err != nil {
		t.Fatalf("AdminSetStatus: %v", err)
	}
	if updated.Status != models.BookingDelivered {
		t.Fatalf("status = %s, want %s", updated.Status, models.BookingDelivered)
	}
	if len(updated.StatusAudit) != 1 {
		t.Fatalf("status audit entries = %d, want 1", len(updated.StatusAudit))
	}
	entry := updated.StatusAudit[0]
	if entry.From != models.BookingPending || entry.To != models.BookingDelivered || entry.Actor != "admin-1" {
		t.Errorf("unexpected audit entry %+v", entry)
	}

	// The override performs no resource sync: the crew stays On Trip.
	if got := env.employees.statusOf("EMP001"); got != models.ResourceOnTrip {
		t.Errorf("employee status after override = %s, want %s", got, models.ResourceOnTrip)
	}

	_, err = env.svc.AdminSetStatus(ctx, b.ID, "Bogus", admin, "")
	var v *ValidationError
	if !errors.As(err, &v) {
		t.Fatalf("bogus status err = %v, want ValidationError", err)
	}
}

func TestUpdateDriverLocation(t *testing.T) {
	env := newTestEnv(
		[]*models.Vehicle{availableVehicle("V001", "ABC-1234")},
		[]*models.Employee{availableDriver("EMP001")},
	)
	ctx := context.Background()
	driver := Actor{ID: "EMP001", Role: "Driver"}
	b := mustCreateBooking(t, env, "V001", []string{"EMP001"})

	// Not In Transit yet.
	_, err := env.svc.UpdateDriverLocation(b.ID, driver, 14.5995, 120.9842, 8)
	var pre *PreconditionError
	if !errors.As(err, &pre) {
		t.Fatalf("location before transit: err = %v, want PreconditionError", err)
	}

	for _, target := range []models.BookingStatus{models.BookingReadyToGo, models.BookingInTransit} {
		if _, err := env.svc.Transition(ctx, b.ID, target, driver, TransitionOptions{}); err != nil {
			t.Fatalf("transition to %s: %v", target, err)
		}
	}

	// Out-of-range coordinates.
	if _, err := env.svc.UpdateDriverLocation(b.ID, driver, 95, 120, 8); err == nil {
		t.Fatal("expected error for latitude out of range")
	}
	if _, err := env.svc.UpdateDriverLocation(b.ID, driver, 14.5, 200, 8); err == nil {
		t.Fatal("expected error for longitude out of range")
	}

	// Unbound employee.
	_, err = env.svc.UpdateDriverLocation(b.ID, Actor{ID: "EMP999", Role: "Driver"}, 14.5995, 120.9842, 8)
	if !errors.As(err, &pre) {
		t.Fatalf("unbound location report: err = %v, want PreconditionError", err)
	}

	updated, err := env.svc.UpdateDriverLocation(b.ID, driver, 14.5995, 120.9842, 8)
	if err != nil {
		t.Fatalf("UpdateDriverLocation: %v", err)
	}
	if updated.DriverLocation == nil || updated.DriverLocation.Latitude != 14.5995 {
		t.Fatalf("driver location not recorded: %+v", updated.DriverLocation)
	}
}
