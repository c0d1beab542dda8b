package agreementsim

// Package agreementsim is a stand-in agreement recorder used until the
// ITSM backend exposes a write API. It logs the signed agreement after a
// short simulated processing delay.

import (
	"context"
	"log/slog"
	"time"

	"github.com/itsm-tools/device-agreement/internal/ports"
)

const defaultDelay = 1500 * time.Millisecond

// Recorder logs signed agreements instead of persisting them.
type Recorder struct {
	logger *slog.Logger
	delay  time.Duration
}

// NewRecorder builds a simulated recorder.
func NewRecorder(logger *slog.Logger) *Recorder {
	return &Recorder{logger: logger, delay: defaultDelay}
}

// Record waits out the simulated processing delay and logs the agreement.
// Honors context cancellation so an abandoned request does not linger.
func (r *Recorder) Record(ctx context.Context, agreement ports.SignedAgreement) error {
	timer := time.NewTimer(r.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	r.logger.Info("agreement signed",
		"user_id", agreement.UserID,
		"user_principal_name", agreement.UserPrincipalName,
		"device_id", agreement.DeviceID,
		"hostname", agreement.Hostname,
	)
	return nil
}
