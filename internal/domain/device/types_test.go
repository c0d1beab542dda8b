package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchState_Variants(t *testing.T) {
	idle := Idle()
	assert.True(t, idle.IsIdle())
	assert.Equal(t, PhaseIdle, idle.Phase())

	loading := Loading()
	assert.True(t, loading.IsLoading())

	rec := Record{ID: "1", Hostname: "DESKTOP-12345", OperatingSystem: "Windows"}
	loaded := Loaded(rec)
	assert.True(t, loaded.IsLoaded())

	got, ok := loaded.Record()
	require.True(t, ok)
	assert.Equal(t, rec, got)

	failed := Failed(FailureReason{Kind: FailureNetwork})
	assert.True(t, failed.IsFailed())

	reason, ok := failed.Reason()
	require.True(t, ok)
	assert.Equal(t, FailureNetwork, reason.Kind)
}

// A state can expose a record or a reason, never both: the accessors of
// every variant other than their own return ok=false.
func TestFetchState_NeverRecordAndReason(t *testing.T) {
	states := []FetchState{
		Idle(),
		Loading(),
		Loaded(Record{ID: "1", Hostname: "h"}),
		Failed(FailureReason{Kind: FailureServer}),
	}

	for _, s := range states {
		_, hasRecord := s.Record()
		_, hasReason := s.Reason()
		assert.False(t, hasRecord && hasReason, "state %q exposes both record and reason", s.Phase())
	}
}

func TestFetchState_ZeroValueIsIdle(t *testing.T) {
	var s FetchState
	assert.True(t, s.IsIdle())
}

func TestFailureReason_Retryable(t *testing.T) {
	tests := []struct {
		kind FailureKind
		want bool
	}{
		{FailureNetwork, true},
		{FailureServer, true},
		{FailureUnknown, true},
		{FailureUnauthorized, false},
		{FailureNotFoundUser, false},
		{FailureNotFoundDevice, false},
		{FailureAuthRequired, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, FailureReason{Kind: tt.kind}.Retryable())
		})
	}
}

func TestFailureReason_ReauthRequired(t *testing.T) {
	assert.True(t, FailureReason{Kind: FailureUnauthorized}.ReauthRequired())
	assert.True(t, FailureReason{Kind: FailureAuthRequired}.ReauthRequired())
	assert.False(t, FailureReason{Kind: FailureNetwork}.ReauthRequired())
}

func TestFailureReason_UserMessage(t *testing.T) {
	// Every kind has a non-empty localized message.
	kinds := []FailureKind{
		FailureAuthRequired, FailureNetwork, FailureUnauthorized,
		FailureNotFoundUser, FailureNotFoundDevice, FailureServer, FailureUnknown,
	}
	for _, k := range kinds {
		assert.NotEmpty(t, FailureReason{Kind: k}.UserMessage(), "kind %s", k)
	}

	// Unknown failures surface their original message when present.
	r := FailureReason{Kind: FailureUnknown, Message: "detalle original"}
	assert.Equal(t, "detalle original", r.UserMessage())
}
