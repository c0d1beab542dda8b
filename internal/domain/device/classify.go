package device

import (
	"context"
	"errors"
	"net"
	"strings"
)

// ErrNoDevice is returned by directory adapters when the lookup succeeded
// but the user has no managed device enrolled.
var ErrNoDevice = errors.New("no managed device found")

// ErrNoHostname is returned when a device record exists but carries no
// device name; the agreement cannot be presented without one.
var ErrNoHostname = errors.New("managed device has no hostname")

// DirectoryError is the structured contract directory adapters implement so
// failures can be classified from status and error codes instead of message
// text. StatusCode returns 0 when no HTTP response was received.
type DirectoryError interface {
	error
	StatusCode() int
	DirectoryCode() string
}

// Classify maps a raw directory failure to a FailureReason. Structured
// status/code information is preferred; message inspection is the last
// resort for unstructured errors (the user-vs-device 404 distinction is
// best-effort by nature).
func Classify(err error) FailureReason {
	switch {
	case err == nil:
		return FailureReason{Kind: FailureUnknown}
	case errors.Is(err, ErrNoDevice):
		return FailureReason{Kind: FailureNotFoundDevice, Message: err.Error()}
	case errors.Is(err, ErrNoHostname):
		return FailureReason{
			Kind:    FailureUnknown,
			Message: "Se encontró un dispositivo pero no tiene un nombre (hostname) asignado.",
		}
	}

	var dirErr DirectoryError
	if errors.As(err, &dirErr) {
		return classifyDirectoryError(dirErr)
	}

	if isTransportError(err) {
		return FailureReason{Kind: FailureNetwork, Message: err.Error()}
	}

	return FailureReason{Kind: FailureUnknown, Message: err.Error()}
}

func classifyDirectoryError(dirErr DirectoryError) FailureReason {
	status := dirErr.StatusCode()
	switch {
	case status == 401 || status == 403:
		return FailureReason{Kind: FailureUnauthorized, Message: dirErr.Error()}
	case status == 404:
		return classifyNotFound(dirErr)
	case status >= 500:
		return FailureReason{Kind: FailureServer, Message: dirErr.Error()}
	case status == 0:
		// No HTTP response at all: transport-level failure.
		return FailureReason{Kind: FailureNetwork, Message: dirErr.Error()}
	default:
		return FailureReason{Kind: FailureUnknown, Message: dirErr.Error()}
	}
}

// classifyNotFound distinguishes "the user is absent from the directory"
// from "the user exists but has no device". Graph reports a missing /users
// segment as Request_ResourceNotFound; anything else on the managedDevices
// path is treated as a missing device unless the message names the user.
func classifyNotFound(dirErr DirectoryError) FailureReason {
	code := dirErr.DirectoryCode()
	if code == "Request_ResourceNotFound" || code == "ResourceNotFound" {
		return FailureReason{Kind: FailureNotFoundUser, Message: dirErr.Error()}
	}
	msg := strings.ToLower(dirErr.Error())
	if strings.Contains(msg, "user") || strings.Contains(msg, "usuario") {
		return FailureReason{Kind: FailureNotFoundUser, Message: dirErr.Error()}
	}
	return FailureReason{Kind: FailureNotFoundDevice, Message: dirErr.Error()}
}

func isTransportError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
