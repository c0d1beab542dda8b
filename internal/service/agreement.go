package service

import (
	"context"
	"errors"
	"fmt"

	domainauth "github.com/itsm-tools/device-agreement/internal/domain/auth"
	"github.com/itsm-tools/device-agreement/internal/domain/device"
	"github.com/itsm-tools/device-agreement/internal/ports"
)

// AgreementServiceOptions groups dependencies for AgreementService.
type AgreementServiceOptions struct {
	Recorder ports.AgreementRecorder
}

// AgreementService validates and records usage agreement acknowledgements.
type AgreementService struct {
	recorder ports.AgreementRecorder
}

// ErrAgreementNotSigned is returned when the form is submitted without the
// acknowledgement checkbox ticked.
var ErrAgreementNotSigned = errors.New("agreement checkbox not ticked")

// NewAgreementService constructs a new AgreementService.
func NewAgreementService(opts AgreementServiceOptions) *AgreementService {
	return &AgreementService{recorder: opts.Recorder}
}

// Submit records the agreement for the session's device. The recorder is
// only reached when the user actually ticked the acknowledgement.
func (s *AgreementService) Submit(ctx context.Context, decision device.AgreementDecision, sess domainauth.Session, record device.Record) error {
	if !decision.Signed {
		return ErrAgreementNotSigned
	}

	agreement := ports.SignedAgreement{
		UserID:            sess.UserID,
		UserPrincipalName: sess.UserPrincipalName,
		DeviceID:          record.ID,
		Hostname:          record.Hostname,
	}
	if err := s.recorder.Record(ctx, agreement); err != nil {
		return fmt.Errorf("record agreement: %w", err)
	}

	return nil
}
