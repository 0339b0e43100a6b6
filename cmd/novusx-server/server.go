package main

import (
	"time"

	"github.com/novusx/novusx-server/internal/constants"
	"github.com/novusx/novusx-server/internal/logging"
	"github.com/novusx/novusx-server/internal/service"
	"github.com/novusx/novusx-server/internal/storage"
)

// startTimeoutScanner periodically claims matches whose action deadline has
// passed and resolves each one through service.HandleTimedOutMatch. Claiming
// first keeps multiple server instances from expiring the same match twice.
func startTimeoutScanner(repo storage.Repository, interval time.Duration, workerID string) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			ids, err := repo.ClaimTimedOutMatchIDs(time.Now(), 2*time.Minute, workerID)
			if err != nil {
				logging.Error("timeout scanner failed to claim matches", err, logging.Fields{constants.LogFieldWorker: workerID})
				continue
			}
			// Process sequentially; keeps the database safe under SQLite.
			for _, id := range ids {
				if err := service.HandleTimedOutMatch(repo, id); err != nil {
					logging.Error("failed to expire match", err, logging.Fields{constants.LogFieldMatchID: id, constants.LogFieldWorker: workerID})
				}
			}
		}
	}()
}
