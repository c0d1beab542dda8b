package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/itsm-tools/device-agreement/internal/domain/device"
	"github.com/itsm-tools/device-agreement/internal/mocks"
	"github.com/itsm-tools/device-agreement/internal/ports"
)

func TestAgreementSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockAgreementRecorder(ctrl)
	recorder.EXPECT().
		Record(gomock.Any(), ports.SignedAgreement{
			UserID:            "user-1",
			UserPrincipalName: "jdoe@example.com",
			DeviceID:          "dev-1",
			Hostname:          "LAPTOP-42",
		}).
		Return(nil)

	svc := NewAgreementService(AgreementServiceOptions{Recorder: recorder})

	err := svc.Submit(context.Background(),
		device.AgreementDecision{Signed: true},
		testSession("s1"),
		device.Record{ID: "dev-1", Hostname: "LAPTOP-42"},
	)
	require.NoError(t, err)
}

func TestAgreementSubmit_NotSignedNeverRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockAgreementRecorder(ctrl)
	// No EXPECT: reaching the recorder fails the test.

	svc := NewAgreementService(AgreementServiceOptions{Recorder: recorder})

	err := svc.Submit(context.Background(),
		device.AgreementDecision{Signed: false},
		testSession("s1"),
		device.Record{ID: "dev-1", Hostname: "LAPTOP-42"},
	)
	assert.ErrorIs(t, err, ErrAgreementNotSigned)
}

func TestAgreementSubmit_RecorderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockAgreementRecorder(ctrl)
	recorder.EXPECT().
		Record(gomock.Any(), gomock.Any()).
		Return(errors.New("backend unavailable"))

	svc := NewAgreementService(AgreementServiceOptions{Recorder: recorder})

	err := svc.Submit(context.Background(),
		device.AgreementDecision{Signed: true},
		testSession("s1"),
		device.Record{ID: "dev-1", Hostname: "LAPTOP-42"},
	)
	assert.Error(t, err)
}
