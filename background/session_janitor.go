// Package background contains services and tasks that run in the background,
// independently of direct HTTP request-response cycles.
// In Nest.js, this could be analogous to using `@nestjs/schedule` for cron jobs.
package background

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// sweepTimeout bounds a single purge pass against the session store.
const sweepTimeout = 30 * time.Second

// SessionPurger deletes expired sessions and reports how many went.
// *auth.SessionManager satisfies it.
type SessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// StartSessionJanitor starts a goroutine that purges expired sessions every interval.
// ELI5: a cleaner walks through the session table on a fixed schedule and throws away
// every ticket whose date has passed, so the table does not grow forever.
//
// The goroutine stops when stopChan is closed. The returned channel is closed once it
// has fully stopped, including any sweep that was running at that moment, so callers
// can wait on it during graceful shutdown.
func StartSessionJanitor(purger SessionPurger, interval time.Duration, log logrus.FieldLogger, stopChan <-chan struct{}) <-chan struct{} {
	done := make(chan struct{})
	log = log.WithField("component", "session-janitor")

	if interval <= 0 {
		log.Warn("Session janitor disabled: non-positive interval")
		close(done)
		return done
	}

	go func() {
		defer close(done)
		defer log.Info("Session janitor stopped")

		// `time.NewTicker` delivers a tick on `ticker.C` every `interval`.
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		log.WithField("interval", interval.String()).Info("Session janitor started")
		for {
			// `select` waits on several channels at once; whichever is ready first wins.
			select {
			case <-stopChan:
				return
			case <-ticker.C:
				Sweep(purger, log)
			}
		}
	}()
	return done
}

// Sweep runs one purge pass and logs the outcome. Failures are logged and the
// next tick simply tries again.
func Sweep(purger SessionPurger, log logrus.FieldLogger) {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	removed, err := purger.PurgeExpired(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to purge expired sessions")
		return
	}
	if removed > 0 {
		log.WithField("removed", removed).Info("Purged expired sessions")
		return
	}
	log.Debug("No expired sessions to purge")
}
