package counterRepo

import "fmt"

// Formatting is a pure function over an already-unique integer, so it needs
// no synchronization of its own.

// FormatReservationID renders a reservation sequence value, e.g. RES-0001.
func FormatReservationID(seq int64) string {
	return fmt.Sprintf("RES-%04d", seq)
}

// FormatTripNumber renders a trip sequence value, e.g. TRP-0001.
func FormatTripNumber(seq int64) string {
	return fmt.Sprintf("TRP-%04d", seq)
}

// FormatEmployeeID renders an employee sequence value, e.g. EMP001.
func FormatEmployeeID(seq int64) string {
	return fmt.Sprintf("EMP%03d", seq)
}

// FormatVehicleID renders a vehicle sequence value, e.g. V001.
func FormatVehicleID(seq int64) string {
	return fmt.Sprintf("V%03d", seq)
}
