package httpx

import (
	"context"
	"os"
	"testing"
	"time"

	domainauth "github.com/itsm-tools/device-agreement/internal/domain/auth"
	"github.com/itsm-tools/device-agreement/internal/domain/device"
	"github.com/itsm-tools/device-agreement/internal/service"
)

// RequireTemplateRenderer creates a TemplateRenderer for tests, skipping the test if templates are not available.
func RequireTemplateRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS(TemplatePathFromTest),
	})
	if err != nil {
		t.Skipf("Templates not available, skipping: %v", err)
		return nil
	}
	return tr
}

// mockAuthService is a test double for service.AuthService.
type mockAuthService struct {
	beginLoginFunc    func(ctx context.Context, returnPath string) (*service.BeginLoginResult, error)
	completeLoginFunc func(ctx context.Context, input service.CompleteLoginInput) (*service.CompleteLoginResult, error)
	getSessionFunc    func(ctx context.Context, sessionID string) (*domainauth.Session, error)
	logoutFunc        func(ctx context.Context, sessionID string) error
}

func (m *mockAuthService) BeginLogin(
	ctx context.Context,
	returnPath string,
) (*service.BeginLoginResult, error) {
	if m.beginLoginFunc != nil {
		return m.beginLoginFunc(ctx, returnPath)
	}
	return &service.BeginLoginResult{
		AuthURL: "https://login.example.com/auth?state=test-state&nonce=test-nonce",
		State:   "test-state",
		Nonce:   "test-nonce",
	}, nil
}

func (m *mockAuthService) CompleteLogin(
	ctx context.Context,
	input service.CompleteLoginInput,
) (*service.CompleteLoginResult, error) {
	if m.completeLoginFunc != nil {
		return m.completeLoginFunc(ctx, input)
	}
	return &service.CompleteLoginResult{
		Session: domainauth.Session{
			ID:                "test-session-id",
			UserID:            "test-user",
			UserPrincipalName: "test@example.com",
			Email:             "test@example.com",
			AccessToken:       "test-token",
			ExpiresAt:         time.Now().Add(time.Hour),
		},
	}, nil
}

func (m *mockAuthService) GetSession(
	ctx context.Context,
	sessionID string,
) (*domainauth.Session, error) {
	if m.getSessionFunc != nil {
		return m.getSessionFunc(ctx, sessionID)
	}
	return &domainauth.Session{
		ID:                sessionID,
		UserID:            "test-user",
		UserPrincipalName: "test@example.com",
		Email:             "test@example.com",
		AccessToken:       "test-token",
		ExpiresAt:         time.Now().Add(time.Hour),
	}, nil
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID string) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, sessionID)
	}
	return nil
}

// fakeDeviceFetch is a test double for the device fetch service.
type fakeDeviceFetch struct {
	state       device.FetchState
	fetchCalls  int
	retryCalls  int
	resetCalls  []string
	retryResult *device.FetchState
}

func (f *fakeDeviceFetch) State(string) device.FetchState { return f.state }

func (f *fakeDeviceFetch) Fetch(_ context.Context, _ domainauth.Session) device.FetchState {
	f.fetchCalls++
	return f.state
}

func (f *fakeDeviceFetch) Retry(_ context.Context, _ domainauth.Session) device.FetchState {
	f.retryCalls++
	if f.retryResult != nil {
		return *f.retryResult
	}
	return f.state
}

func (f *fakeDeviceFetch) Reset(sessionID string) {
	f.resetCalls = append(f.resetCalls, sessionID)
}

// fakeAgreements is a test double for the agreement service.
type fakeAgreements struct {
	submitErr error
	calls     int
	lastSign  bool
}

func (f *fakeAgreements) Submit(
	_ context.Context,
	decision device.AgreementDecision,
	_ domainauth.Session,
	_ device.Record,
) error {
	f.calls++
	f.lastSign = decision.Signed
	return f.submitErr
}
