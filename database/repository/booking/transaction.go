// File: database/repository/booking/transaction.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/jpcunanan716/bestaccord-transportation-sub000/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApproveVehicleChange applies the full reassignment write set inside a Mongo
// transaction. Write order matters for non-transactional degradation: history
// first, then live fields, then the registry updates, so a crash after a
// prefix always leaves the history reflecting intent.
func (r *MongoBookingRepo) ApproveVehicleChange(
	ctx context.Context,
	bookingID string,
	outgoing, incoming models.VehicleHistoryEntry,
) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now()

	txnFn := func(sc mongo.SessionContext) error {
		// 1. Append both history entries: outgoing marked replaced, incoming active.
		push := bson.M{
			"$push": bson.M{
				"vehicleHistory": bson.M{"$each": bson.A{outgoing, incoming}},
			},
		}
		res, err := r.coll.UpdateOne(sc, bson.M{"id": bookingID}, push)
		if err != nil {
			return fmt.Errorf("history append failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("booking %s not found", bookingID)
		}

		// 2. Update live vehicle fields and mark the request approved.
		set := bson.M{
			"$set": bson.M{
				"vehicleId":                       incoming.VehicleID,
				"vehicleType":                     incoming.VehicleType,
				"plateNumber":                     incoming.PlateNumber,
				"vehicleChangeRequest.status":     models.ChangeRequestApproved,
				"vehicleChangeRequest.approvedAt": now,
				"updatedAt":                       now,
			},
		}
		if _, err := r.coll.UpdateOne(sc, bson.M{"id": bookingID}, set); err != nil {
			return fmt.Errorf("live vehicle field update failed: %w", err)
		}

		// 3. Release the outgoing vehicle. A booking created with only a
		// vehicle type has no concrete outgoing unit to release.
		if outgoing.VehicleID != "" {
			release := bson.M{"$set": bson.M{"status": models.ResourceNotAvailable, "updatedAt": now}}
			if _, err := r.vehicleColl.UpdateOne(sc, bson.M{"vehicleId": outgoing.VehicleID}, release); err != nil {
				return fmt.Errorf("outgoing vehicle release failed: %w", err)
			}
		}

		// 4. Reserve the incoming vehicle. It must still exist.
		reserve := bson.M{"$set": bson.M{"status": models.ResourceOnTrip, "updatedAt": now}}
		res, err = r.vehicleColl.UpdateOne(sc, bson.M{"vehicleId": incoming.VehicleID}, reserve)
		if err != nil {
			return fmt.Errorf("incoming vehicle reserve failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("vehicle %s not found", incoming.VehicleID)
		}

		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("vehicle change transaction failed: %w", err)
	}

	return nil
}
