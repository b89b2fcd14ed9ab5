package models

import "testing"

func TestBookingStatusTransitions(t *testing.T) {
	all := []BookingStatus{
		BookingPending,
		BookingReadyToGo,
		BookingInTransit,
		BookingDelivered,
		BookingCompleted,
	}

	// The chain is strictly linear: each status may only move to the next.
	next := map[BookingStatus]BookingStatus{
		BookingPending:   BookingReadyToGo,
		BookingReadyToGo: BookingInTransit,
		BookingInTransit: BookingDelivered,
		BookingDelivered: BookingCompleted,
	}

	for _, from := range all {
		for _, to := range all {
			want := next[from] == to
			if got := from.CanTransitionTo(to); got != want {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", from, to, got, want)
			}
		}
	}

	if BookingCompleted.CanTransitionTo(BookingPending) {
		t.Error("Completed must be terminal")
	}
}

func TestBookingStatusIsValid(t *testing.T) {
	for _, s := range []BookingStatus{BookingPending, BookingReadyToGo, BookingInTransit, BookingDelivered, BookingCompleted} {
		if !s.IsValid() {
			t.Errorf("IsValid(%s) = false", s)
		}
	}
	for _, s := range []BookingStatus{"", "pending", "Loading", "ready to go"} {
		if s.IsValid() {
			t.Errorf("IsValid(%q) = true", s)
		}
	}
}

func TestBookingStatusPredicates(t *testing.T) {
	tests := []struct {
		status       BookingStatus
		frozen       bool
		terminal     bool
		driverTarget bool
	}{
		{BookingPending, false, false, false},
		{BookingReadyToGo, true, false, false},
		{BookingInTransit, true, false, true},
		{BookingDelivered, false, false, true},
		{BookingCompleted, false, true, true},
	}

	for _, tt := range tests {
		if got := tt.status.IsFrozen(); got != tt.frozen {
			t.Errorf("IsFrozen(%s) = %v, want %v", tt.status, got, tt.frozen)
		}
		if got := tt.status.IsTerminal(); got != tt.terminal {
			t.Errorf("IsTerminal(%s) = %v, want %v", tt.status, got, tt.terminal)
		}
		if got := tt.status.IsDriverTarget(); got != tt.driverTarget {
			t.Errorf("IsDriverTarget(%s) = %v, want %v", tt.status, got, tt.driverTarget)
		}
	}
}

func TestResourceStatusIsValid(t *testing.T) {
	for _, s := range []ResourceStatus{ResourceAvailable, ResourceNotAvailable, ResourceOnTrip} {
		if !s.IsValid() {
			t.Errorf("IsValid(%s) = false", s)
		}
	}
	if ResourceStatus("Busy").IsValid() {
		t.Error("IsValid(Busy) = true")
	}
}
