package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domainauth "github.com/itsm-tools/device-agreement/internal/domain/auth"
	"github.com/itsm-tools/device-agreement/internal/domain/device"
	"github.com/itsm-tools/device-agreement/internal/ports"
)

// entryGrace extends an entry's lifetime past its session expiry, matching
// the refresh window the session cookie gets. Entries whose session cannot
// come back are pruned on the next fetch or retry.
const entryGrace = 12 * time.Hour

// DeviceFetchServiceOptions groups dependencies for DeviceFetchService.
type DeviceFetchServiceOptions struct {
	Directory ports.DeviceDirectory
	Logger    *slog.Logger
}

// DeviceFetchService owns the per-session device retrieval state machine.
// At most one directory lookup runs per session at a time, and the outcome
// of a lookup only lands if the session's fetch generation has not moved on
// (a sign-out or a newer retry makes older results void).
type DeviceFetchService struct {
	directory ports.DeviceDirectory
	logger    *slog.Logger

	mu        sync.Mutex
	entries   map[string]*fetchEntry
	nextEpoch uint64
}

type fetchEntry struct {
	state device.FetchState
	// epoch identifies the fetch currently owning this entry. Epochs are
	// drawn from a service-wide counter so they never repeat, even when a
	// session is reset and recreated; a completing lookup compares its
	// captured epoch before writing its result so results from a superseded
	// fetch are discarded.
	epoch uint64
	// expiresAt bounds how long the entry may outlive its session. Sessions
	// that end without a sign-out (no Reset) are cleaned up lazily.
	expiresAt time.Time
}

// NewDeviceFetchService constructs a new DeviceFetchService.
func NewDeviceFetchService(opts DeviceFetchServiceOptions) *DeviceFetchService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DeviceFetchService{
		directory: opts.Directory,
		logger:    logger,
		entries:   make(map[string]*fetchEntry),
	}
}

// State returns the current fetch state for a session. Sessions that never
// started a fetch are idle.
func (s *DeviceFetchService) State(sessionID string) device.FetchState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[sessionID]; ok {
		return entry.state
	}
	return device.Idle()
}

// Fetch starts the device lookup for the session if it is idle. Any other
// state is returned unchanged: a lookup already in flight keeps running, and
// a settled result (loaded or failed) stays until Retry or Reset.
func (s *DeviceFetchService) Fetch(ctx context.Context, sess domainauth.Session) device.FetchState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(time.Now())
	entry := s.entryLocked(sess)

	if !entry.state.IsIdle() {
		return entry.state
	}

	return s.startLocked(ctx, entry, sess)
}

// Retry discards a settled result and runs the lookup again. It is a no-op
// while a lookup is in flight, and a failure that retrying cannot fix (the
// user or device simply is not in the directory, or authentication is
// required) stays failed.
func (s *DeviceFetchService) Retry(ctx context.Context, sess domainauth.Session) device.FetchState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(time.Now())
	entry := s.entryLocked(sess)

	if entry.state.IsLoading() {
		return entry.state
	}
	if reason, failed := entry.state.Reason(); failed && !reason.Retryable() {
		return entry.state
	}

	return s.startLocked(ctx, entry, sess)
}

// Reset forgets the session's fetch state entirely. Used on sign-out; a
// lookup still in flight for the old session finds its entry gone and
// discards its result.
func (s *DeviceFetchService) Reset(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
}

// entryLocked returns the session's entry, creating it if needed, and
// refreshes its lifetime from the session expiry. Callers must hold s.mu.
func (s *DeviceFetchService) entryLocked(sess domainauth.Session) *fetchEntry {
	entry, ok := s.entries[sess.ID]
	if !ok {
		entry = &fetchEntry{state: device.Idle()}
		s.entries[sess.ID] = entry
	}
	entry.expiresAt = sess.ExpiresAt.Add(entryGrace)
	return entry
}

// pruneLocked drops entries whose session can no longer come back, so state
// for sessions that expired without a sign-out does not accumulate. Callers
// must hold s.mu.
func (s *DeviceFetchService) pruneLocked(now time.Time) {
	for id, entry := range s.entries {
		if !entry.expiresAt.IsZero() && now.After(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}

// startLocked transitions the entry to loading and launches the directory
// lookup. Callers must hold s.mu.
func (s *DeviceFetchService) startLocked(ctx context.Context, entry *fetchEntry, sess domainauth.Session) device.FetchState {
	if !sess.CanQueryDirectory() {
		entry.state = device.Failed(device.FailureReason{
			Kind:    device.FailureAuthRequired,
			Message: "session has no directory credentials",
		})
		return entry.state
	}

	s.nextEpoch++
	entry.epoch = s.nextEpoch
	entry.state = device.Loading()
	epoch := entry.epoch

	// Detach from the triggering request so a closed browser tab does not
	// abort the lookup mid-flight. The directory client bounds the call.
	lookupCtx := context.WithoutCancel(ctx)
	go s.run(lookupCtx, sess, epoch)

	return entry.state
}

// run performs the directory lookup and applies the outcome, unless the
// session's fetch generation moved on while it was in flight.
func (s *DeviceFetchService) run(ctx context.Context, sess domainauth.Session, epoch uint64) {
	record, err := s.directory.ManagedDevice(ctx, sess.AccessToken, sess.UserPrincipalName)

	var next device.FetchState
	if err != nil {
		reason := device.Classify(err)
		s.logger.Warn("device lookup failed",
			"session_id", sess.ID,
			"kind", string(reason.Kind),
			"error", err,
		)
		next = device.Failed(reason)
	} else {
		s.logger.Info("device lookup succeeded",
			"session_id", sess.ID,
			"device_id", record.ID,
			"hostname", record.Hostname,
		)
		next = device.Loaded(record)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sess.ID]
	if !ok || entry.epoch != epoch {
		// Session was reset or a newer fetch superseded this one.
		return
	}
	entry.state = next
}
