// Package mocks provides mock implementations for testing the device agreement portal.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the
// directory and recorder ports. The mocks are generated using go:generate directives
// and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	dir := mocks.NewMockDeviceDirectory(ctrl)
//	dir.EXPECT().ManagedDevice(gomock.Any(), gomock.Any(), gomock.Any()).Return(record, nil)
package mocks

// Generate mock for DeviceDirectory interface from internal/ports package.
// This creates MockDeviceDirectory with methods for all DeviceDirectory interface methods:
// ManagedDevice
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=device_directory_mock.go github.com/itsm-tools/device-agreement/internal/ports DeviceDirectory

// Generate mock for AgreementRecorder interface from internal/ports package.
// This creates MockAgreementRecorder with methods for all AgreementRecorder interface methods:
// Record
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=agreement_recorder_mock.go github.com/itsm-tools/device-agreement/internal/ports AgreementRecorder
