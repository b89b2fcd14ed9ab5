// File: cron/janitor.go
package cron

import (
	"time"

	bookingRepo "github.com/jpcunanan716/bestaccord-transportation-sub000/database/repository/booking"
	"github.com/jpcunanan716/bestaccord-transportation-sub000/utils"

	"go.uber.org/zap"
)

const (
	janitorInterval = 10 * time.Minute
	// A vehicle change request sitting unapproved this long means a truck is
	// stuck on the road; surface it loudly.
	staleRequestAge = 30 * time.Minute
)

// StartJanitor runs the background sweep that flags stale pending vehicle
// change requests. Runs until the process exits.
func StartJanitor(repo bookingRepo.BookingRepository) {
	go func() {
		logger := utils.GetLogger()
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()

		for range ticker.C {
			pending, err := repo.GetPendingVehicleChanges()
			if err != nil {
				logger.Warn("janitor: failed to list pending vehicle changes", zap.Error(err))
				continue
			}

			cutoff := time.Now().Add(-staleRequestAge)
			for _, b := range pending {
				if b.VehicleChangeRequest == nil {
					continue
				}
				if b.VehicleChangeRequest.RequestedAt.Before(cutoff) {
					logger.Warn("janitor: stale vehicle change request",
						zap.String("tripNumber", b.TripNumber),
						zap.String("reason", b.VehicleChangeRequest.Reason),
						zap.Time("requestedAt", b.VehicleChangeRequest.RequestedAt))
				}
			}
		}
	}()
}
