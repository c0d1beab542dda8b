package device

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubDirErr implements DirectoryError for classification tests.
type stubDirErr struct {
	status int
	code   string
	msg    string
}

func (e *stubDirErr) Error() string         { return e.msg }
func (e *stubDirErr) StatusCode() int       { return e.status }
func (e *stubDirErr) DirectoryCode() string { return e.code }

// stubNetErr implements net.Error.
type stubNetErr struct{ msg string }

func (e *stubNetErr) Error() string   { return e.msg }
func (e *stubNetErr) Timeout() bool   { return true }
func (e *stubNetErr) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureKind
	}{
		{
			name: "no device sentinel",
			err:  fmt.Errorf("lookup: %w", ErrNoDevice),
			want: FailureNotFoundDevice,
		},
		{
			name: "missing hostname sentinel",
			err:  ErrNoHostname,
			want: FailureUnknown,
		},
		{
			name: "status 401",
			err:  &stubDirErr{status: 401, msg: "InvalidAuthenticationToken"},
			want: FailureUnauthorized,
		},
		{
			name: "status 403",
			err:  &stubDirErr{status: 403, msg: "Forbidden"},
			want: FailureUnauthorized,
		},
		{
			name: "404 with user-not-found code",
			err:  &stubDirErr{status: 404, code: "Request_ResourceNotFound", msg: "Resource 'nobody@example.com' does not exist"},
			want: FailureNotFoundUser,
		},
		{
			name: "404 with user in message",
			err:  &stubDirErr{status: 404, msg: "user does not exist in the directory"},
			want: FailureNotFoundUser,
		},
		{
			name: "plain 404",
			err:  &stubDirErr{status: 404, msg: "not found"},
			want: FailureNotFoundDevice,
		},
		{
			name: "status 500",
			err:  &stubDirErr{status: 500, msg: "InternalServerError"},
			want: FailureServer,
		},
		{
			name: "status 503",
			err:  &stubDirErr{status: 503, msg: "ServiceUnavailable"},
			want: FailureServer,
		},
		{
			name: "directory error without response",
			err:  &stubDirErr{status: 0, msg: "connection refused"},
			want: FailureNetwork,
		},
		{
			name: "unexpected status",
			err:  &stubDirErr{status: 418, msg: "teapot"},
			want: FailureUnknown,
		},
		{
			name: "deadline exceeded",
			err:  fmt.Errorf("call graph: %w", context.DeadlineExceeded),
			want: FailureNetwork,
		},
		{
			name: "net.Error",
			err:  &stubNetErr{msg: "dial tcp: i/o timeout"},
			want: FailureNetwork,
		},
		{
			name: "anything else",
			err:  errors.New("boom"),
			want: FailureUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			assert.Equal(t, tt.want, got.Kind)
		})
	}
}

func TestClassify_MissingHostnameMessage(t *testing.T) {
	got := Classify(ErrNoHostname)
	assert.Equal(t, "Se encontró un dispositivo pero no tiene un nombre (hostname) asignado.", got.Message)
}

func TestClassify_UnknownKeepsOriginalMessage(t *testing.T) {
	got := Classify(errors.New("algo salió mal"))
	assert.Equal(t, "algo salió mal", got.Message)
}
