package ports

import (
	"context"

	"github.com/itsm-tools/device-agreement/internal/domain/device"
)

// DeviceDirectory performs the single managed-device lookup against the
// device-management directory. Implementations return device.ErrNoDevice when
// the user has no enrolled device, and errors implementing
// device.DirectoryError for HTTP-level failures so they can be classified.
type DeviceDirectory interface {
	ManagedDevice(ctx context.Context, accessToken, userPrincipalName string) (device.Record, error)
}

// SignedAgreement is what gets recorded when a user acknowledges the
// agreement for their device.
type SignedAgreement struct {
	UserID            string
	UserPrincipalName string
	DeviceID          string
	Hostname          string
}

// AgreementRecorder records a signed agreement. The shipped implementation
// simulates the save; a durable store can replace it behind this port, and
// its write failures surface through the returned error.
type AgreementRecorder interface {
	Record(ctx context.Context, agreement SignedAgreement) error
}
