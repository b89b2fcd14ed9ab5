package models

import "time"

// Booking represents one delivery trip request and its lifecycle state.
// The booking document is the authoritative record of a trip; vehicle and
// employee availability are reflections of it.
type Booking struct {
	ID               string        `bson:"id" json:"id"`                           // Internal unique handle (UUID)
	ReservationID    string        `bson:"reservationId" json:"reservationId"`     // Human-readable, assigned once at creation (e.g. RES-0001)
	TripNumber       string        `bson:"tripNumber" json:"tripNumber"`           // Human-readable, assigned once at creation (e.g. TRP-0001)
	Status           BookingStatus `bson:"status" json:"status"`                   // Drives all side effects
	ClientName       string        `bson:"clientName" json:"clientName"`
	PickupLocation   string        `bson:"pickupLocation" json:"pickupLocation"`
	DeliveryLocation string        `bson:"deliveryLocation" json:"deliveryLocation"`
	DeliveryDate     time.Time     `bson:"deliveryDate" json:"deliveryDate"`
	Remarks          string        `bson:"remarks,omitempty" json:"remarks,omitempty"`

	VehicleType string `bson:"vehicleType" json:"vehicleType"`                     // Category chosen at creation (e.g. "6-Wheeler")
	VehicleID   string `bson:"vehicleId,omitempty" json:"vehicleId,omitempty"`     // Concrete unit, set at creation or by reassignment
	PlateNumber string `bson:"plateNumber,omitempty" json:"plateNumber,omitempty"`

	EmployeeAssigned []string `bson:"employeeAssigned" json:"employeeAssigned"` // Ordered, bound at creation, membership never changes

	VehicleChangeRequest *VehicleChangeRequest `bson:"vehicleChangeRequest,omitempty" json:"vehicleChangeRequest,omitempty"`
	VehicleHistory       []VehicleHistoryEntry `bson:"vehicleHistory" json:"vehicleHistory"` // Append-only; entries are never edited or removed
	StatusAudit          []StatusAuditEntry    `bson:"statusAudit,omitempty" json:"statusAudit,omitempty"`

	ProofOfDelivery *TripDocument   `bson:"proofOfDelivery,omitempty" json:"proofOfDelivery,omitempty"`
	DriverLocation  *DriverLocation `bson:"driverLocation,omitempty" json:"driverLocation,omitempty"`

	IsArchived bool      `bson:"isArchived" json:"isArchived"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// VehicleChangeRequestStatus is the state of a pending vehicle swap request.
type VehicleChangeRequestStatus string

const (
	ChangeRequestPending  VehicleChangeRequestStatus = "pending"
	ChangeRequestApproved VehicleChangeRequestStatus = "approved"
)

// VehicleChangeRequest records a request to swap a booking's vehicle mid-trip.
// At most one outstanding request exists per booking.
type VehicleChangeRequest struct {
	Requested   bool                       `bson:"requested" json:"requested"`
	Status      VehicleChangeRequestStatus `bson:"status" json:"status"`
	Reason      string                     `bson:"reason" json:"reason"`
	RequestedAt time.Time                  `bson:"requestedAt" json:"requestedAt"`
	ApprovedAt  *time.Time                 `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
}

// VehicleHistoryEntryStatus marks whether a history entry is the live vehicle
// or one that has been replaced.
type VehicleHistoryEntryStatus string

const (
	VehicleHistoryActive   VehicleHistoryEntryStatus = "active"
	VehicleHistoryReplaced VehicleHistoryEntryStatus = "replaced"
)

// VehicleHistoryEntry is one record in a booking's append-only vehicle log.
type VehicleHistoryEntry struct {
	VehicleID   string                    `bson:"vehicleId" json:"vehicleId"`
	VehicleType string                    `bson:"vehicleType" json:"vehicleType"`
	PlateNumber string                    `bson:"plateNumber,omitempty" json:"plateNumber,omitempty"`
	StartedAt   time.Time                 `bson:"startedAt" json:"startedAt"`
	EndedAt     *time.Time                `bson:"endedAt,omitempty" json:"endedAt,omitempty"`
	Reason      string                    `bson:"reason,omitempty" json:"reason,omitempty"`
	Status      VehicleHistoryEntryStatus `bson:"status" json:"status"`
}

// StatusAuditEntry records an administrative status override. The normal
// transition path does not write audit entries; the escape hatch always does.
type StatusAuditEntry struct {
	From  BookingStatus `bson:"from" json:"from"`
	To    BookingStatus `bson:"to" json:"to"`
	Actor string        `bson:"actor" json:"actor"`
	Note  string        `bson:"note,omitempty" json:"note,omitempty"`
	At    time.Time     `bson:"at" json:"at"`
}

// DriverLocation is the last reported position of the assigned driver,
// writable only while the booking is In Transit.
type DriverLocation struct {
	Latitude    float64   `bson:"latitude" json:"latitude"`
	Longitude   float64   `bson:"longitude" json:"longitude"`
	Accuracy    float64   `bson:"accuracy,omitempty" json:"accuracy,omitempty"`
	LastUpdated time.Time `bson:"lastUpdated" json:"lastUpdated"`
}

// TripDocument is an opaque reference to a stored file. The core never
// interprets file contents.
type TripDocument struct {
	PublicID     string    `bson:"publicId" json:"publicId"`
	DocumentType string    `bson:"documentType" json:"documentType"`
	FileSize     int64     `bson:"fileSize" json:"fileSize"`
	MimeType     string    `bson:"mimeType" json:"mimeType"`
	UploadedAt   time.Time `bson:"uploadedAt" json:"uploadedAt"`
}
