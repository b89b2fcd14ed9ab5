package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"
)

func TestRequestVehicleChange(t *testing.T) {
	env := newTestEnv(
		[]*models.Vehicle{availableVehicle("V001", "ABC-1234")},
		[]*models.Employee{availableDriver("EMP001")},
	)
	b := mustCreateBooking(t, env, "V001", []string{"EMP001"})

	t.Run("reason required", func(t *testing.T) {
		_, err := env.svc.RequestVehicleChange(b.ID, "")
		var v *ValidationError
		if !errors.As(err, &v) {
			t.Fatalf("err = %v, want ValidationError", err)
		}
	})

	t.Run("records pending request", func(t *testing.T) {
		updated, err := env.svc.RequestVehicleChange(b.ID, "flat tire on NLEX")
		if err != nil {
			t.Fatalf("RequestVehicleChange: %v", err)
		}
		req := updated.VehicleChangeRequest
		if req == nil || !req.Requested || req.Status != models.ChangeRequestPending {
			t.Fatalf("unexpected request state %+v", req)
		}
		if req.Reason != "flat tire on NLEX" {
			t.Errorf("reason = %s", req.Reason)
		}
	})

	t.Run("second request conflicts", func(t *testing.T) {
		_, err := env.svc.RequestVehicleChange(b.ID, "engine trouble")
		var conflict *ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("err = %v, want ConflictError", err)
		}
	})
}

func TestRequestVehicleChangeRefusedOnCompleted(t *testing.T) {
	env := newTestEnv(
		[]*models.Vehicle{availableVehicle("V001", "ABC-1234")},
		[]*models.Employee{availableDriver("EMP001")},
	)
	ctx := context.Background()
	driver := Actor{ID: "EMP001", Role: "Driver"}
	b := mustCreateBooking(t, env, "V001", []string{"EMP001"})

	steps := []struct {
		target models.BookingStatus
		opts   TransitionOptions
	}{
		{models.BookingReadyToGo, TransitionOptions{}},
		{models.BookingInTransit, TransitionOptions{}},
		{models.BookingDelivered, TransitionOptions{Proof: &ProofPayload{Data: testProofData}}},
		{models.BookingCompleted, TransitionOptions{}},
	}
	for _, step := range steps {
		if _, err := env.svc.Transition(ctx, b.ID, step.target, driver, step.opts); err != nil {
			t.Fatalf("transition to %s: %v", step.target, err)
		}
	}

	_, err := env.svc.RequestVehicleChange(b.ID, "too late")
	var pre *PreconditionError
	if !errors.As(err, &pre) {
		t.Fatalf("err = %v, want PreconditionError", err)
	}
}

func TestApproveVehicleChange(t *testing.T) {
	env := newTestEnv(
		[]*models.Vehicle{availableVehicle("V001", "ABC-1234"), availableVehicle("V002", "XYZ-5678")},
		[]*models.Employee{availableDriver("EMP001")},
	)
	ctx := context.Background()
	b := mustCreateBooking(t, env, "V001", []string{"EMP001"})

	t.Run("no pending request", func(t *testing.T) {
		_, err := env.svc.ApproveVehicleChange(ctx, b.ID, "V002")
		var pre *PreconditionError
		if !errors.As(err, &pre) {
			t.Fatalf("err = %v, want PreconditionError", err)
		}
	})

	if _, err := env.svc.RequestVehicleChange(b.ID, "flat tire on NLEX"); err != nil {
		t.Fatalf("RequestVehicleChange: %v", err)
	}

	t.Run("unknown replacement vehicle", func(t *testing.T) {
		_, err := env.svc.ApproveVehicleChange(ctx, b.ID, "V404")
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("err = %v, want NotFoundError", err)
		}
	})

	t.Run("replacement not available", func(t *testing.T) {
		if _, err := env.vehicles.SetStatus("V002", models.ResourceNotAvailable); err != nil {
			t.Fatalf("SetStatus: %v", err)
		}
		_, err := env.svc.ApproveVehicleChange(ctx, b.ID, "V002")
		var pre *PreconditionError
		if !errors.As(err, &pre) {
			t.Fatalf("err = %v, want PreconditionError", err)
		}
		if _, err := env.vehicles.SetStatus("V002", models.ResourceAvailable); err != nil {
			t.Fatalf("SetStatus: %v", err)
		}
	})

	t.Run("swap applies full write set", func(t *testing.T) {
		updated, err := env.svc.ApproveVehicleChange(ctx, b.ID, "V002")
		if err != nil {
			t.Fatalf("ApproveVehicleChange: %v", err)
		}

		if updated.VehicleID != "V002" || updated.PlateNumber != "XYZ-5678" {
			t.Fatalf("live vehicle fields = %s / %s", updated.VehicleID, updated.PlateNumber)
		}
		if updated.VehicleChangeRequest.Status != models.ChangeRequestApproved {
			t.Errorf("request status = %s", updated.VehicleChangeRequest.Status)
		}
		if updated.VehicleChangeRequest.ApprovedAt == nil {
			t.Error("approvedAt not set")
		}

		// History: the original active entry plus the closed outgoing and
		// new active incoming entries.
		if len(updated.VehicleHistory) != 3 {
			t.Fatalf("vehicle history entries = %d, want 3", len(updated.VehicleHistory))
		}
		outgoing := updated.VehicleHistory[1]
		incoming := updated.VehicleHistory[2]
		if outgoing.VehicleID != "V001" || outgoing.Status != models.VehicleHistoryReplaced || outgoing.EndedAt == nil {
			t.Errorf("unexpected outgoing entry %+v", outgoing)
		}
		if outgoing.Reason != "flat tire on NLEX" {
			t.Errorf("outgoing reason = %s", outgoing.Reason)
		}
		if incoming.VehicleID != "V002" || incoming.Status != models.VehicleHistoryActive || incoming.EndedAt != nil {
			t.Errorf("unexpected incoming entry %+v", incoming)
		}

		// The broken truck is grounded, not returned to the pool.
		if got := env.vehicles.statusOf("V001"); got != models.ResourceNotAvailable {
			t.Errorf("outgoing vehicle status = %s, want %s", got, models.ResourceNotAvailable)
		}
		if got := env.vehicles.statusOf("V002"); got != models.ResourceOnTrip {
			t.Errorf("incoming vehicle status = %s, want %s", got, models.ResourceOnTrip)
		}
	})
}

func TestApproveVehicleChangeTransactionFailure(t *testing.T) {
	env := newTestEnv(
		[]*models.Vehicle{availableVehicle("V001", "ABC-1234"), availableVehicle("V002", "XYZ-5678")},
		[]*models.Employee{availableDriver("EMP001")},
	)
	ctx := context.Background()
	b := mustCreateBooking(t, env, "V001", []string{"EMP001"})
	if _, err := env.svc.RequestVehicleChange(b.ID, "flat tire"); err != nil {
		t.Fatalf("RequestVehicleChange: %v", err)
	}

	env.bookings.approveErr = errors.New("transaction aborted")
	_, err := env.svc.ApproveVehicleChange(ctx, b.ID, "V002")
	var partial *PartialApplicationError
	if !errors.As(err, &partial) {
		t.Fatalf("err = %v, want PartialApplicationError", err)
	}
	if !errors.Is(err, env.bookings.approveErr) {
		t.Error("underlying transaction error not wrapped")
	}
}

func TestListPendingVehicleChangesEnrichesEmployees(t *testing.T) {
	env := newTestEnv(
		[]*models.Vehicle{availableVehicle("V001", "ABC-1234")},
		[]*models.Employee{availableDriver("EMP001"), availableDriver("EMP002")},
	)
	b := mustCreateBooking(t, env, "V001", []string{"EMP001", "EMP002"})
	if _, err := env.svc.RequestVehicleChange(b.ID, "overheating"); err != nil {
		t.Fatalf("RequestVehicleChange: %v", err)
	}

	pending, err := env.svc.ListPendingVehicleChanges()
	if err != nil {
		t.Fatalf("ListPendingVehicleChanges: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending = %d, want 1", len(pending))
	}
	if len(pending[0].Employees) != 2 {
		t.Fatalf("enriched employees = %d, want 2", len(pending[0].Employees))
	}
}
