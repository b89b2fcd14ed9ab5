package models

import "time"

// Vehicle represents a physical delivery unit.
type Vehicle struct {
	VehicleID          string         `bson:"vehicleId" json:"vehicleId"` // Human-readable identity (e.g. V001)
	VehicleType        string         `bson:"vehicleType" json:"vehicleType"`
	Brand              string         `bson:"brand,omitempty" json:"brand,omitempty"`
	PlateNumber        string         `bson:"plateNumber" json:"plateNumber"`
	RegistrationNumber string         `bson:"registrationNumber" json:"registrationNumber"`
	Status             ResourceStatus `bson:"status" json:"status"`
	CreatedAt          time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time      `bson:"updatedAt" json:"updatedAt"`
}
