package models

// BookingStatus represents the current state of a booking in its lifecycle.
type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingReadyToGo BookingStatus = "Ready to go"
	BookingInTransit BookingStatus = "In Transit"
	BookingDelivered BookingStatus = "Delivered"
	BookingCompleted BookingStatus = "Completed"
)

// validTransitions defines the state machine for booking status transitions.
// The lifecycle is a linear chain; there is no skip-ahead and no backward edge.
var validTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingReadyToGo},
	BookingReadyToGo: {BookingInTransit},
	BookingInTransit: {BookingDelivered},
	BookingDelivered: {BookingCompleted},
	BookingCompleted: {},
}

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible from this status.
func (s BookingStatus) IsTerminal() bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return true
	}
	return len(allowed) == 0
}

// IsFrozen reports whether a booking in this status refuses field edits and
// archiving. A trip that is physically underway cannot be rewritten or hidden.
func (s BookingStatus) IsFrozen() bool {
	return s == BookingReadyToGo || s == BookingInTransit
}

// driverTargets is the restricted sub-path drivers and helpers may invoke
// through the mobile surface.
var driverTargets = map[BookingStatus]bool{
	BookingInTransit: true,
	BookingDelivered: true,
	BookingCompleted: true,
}

// IsDriverTarget returns true if the status may be requested through the
// mobile driver surface.
func (s BookingStatus) IsDriverTarget() bool {
	return driverTargets[s]
}
