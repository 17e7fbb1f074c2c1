package jobs

import (
	"context"
	"time"

	"unistay/services/logger"

	"github.com/robfig/cron/v3"
)

// ExpirePendingSpec runs the pending booking sweep every five minutes
const ExpirePendingSpec = "*/5 * * * *"

// PendingBookingExpirer cancels bookings that never got paid
type PendingBookingExpirer interface {
	ExpirePending(ctx context.Context, olderThan time.Duration) (int, error)
}

// ExpirePendingJob returns the sweep as a cron func
func ExpirePendingJob(expirer PendingBookingExpirer, ttl time.Duration, log logger.Logger) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		log.Debug("Running pending booking expiry at %v", time.Now())
		if _, err := expirer.ExpirePending(ctx, ttl); err != nil {
			log.Error("Failed to expire pending bookings: %v", err)
		}
	}
}

// InitCronJobs registers the jobs and starts the scheduler
func InitCronJobs(c *cron.Cron, expirer PendingBookingExpirer, ttl time.Duration, log logger.Logger) error {
	if _, err := c.AddFunc(ExpirePendingSpec, ExpirePendingJob(expirer, ttl, log)); err != nil {
		return err
	}

	c.Start()
	log.Info("Cron jobs initialized successfully")
	return nil
}
