package models

// ResourceStatus is the availability state shared by vehicles and employees.
// It is mutated by the lifecycle engine in lock-step with the bookings that
// reference the resource, never directly through a general edit.
type ResourceStatus string

const (
	ResourceAvailable    ResourceStatus = "Available"
	ResourceNotAvailable ResourceStatus = "Not Available"
	ResourceOnTrip       ResourceStatus = "On Trip"
)

// IsValid returns true if the status is a recognized resource status.
func (s ResourceStatus) IsValid() bool {
	switch s {
	case ResourceAvailable, ResourceNotAvailable, ResourceOnTrip:
		return true
	}
	return false
}
