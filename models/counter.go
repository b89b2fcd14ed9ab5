package models

// Counter is one document per named sequence ("reservation", "trip",
// "employee", "vehicle"...). Seq only increases and each increment is
// observed by at most one creation operation.
type Counter struct {
	Name string `bson:"name" json:"name"`
	Seq  int64  `bson:"seq" json:"seq"`
}
