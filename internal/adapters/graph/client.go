package graph

// Package graph implements the device directory port against the Microsoft
// Graph managedDevices endpoint.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/itsm-tools/device-agreement/internal/domain/device"
)

// Config captures the subset of Graph behaviour we need.
type Config struct {
	BaseURL string        // e.g. https://graph.microsoft.com/v1.0
	Timeout time.Duration // bound on a single call; default 15s
	Client  *http.Client
}

// Client performs the single managed-device lookup.
type Client struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

// NewClient builds a Graph client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("graph base URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		client:  hc,
	}, nil
}

// APIError is a structured Graph failure. It implements
// device.DirectoryError so the domain layer can classify it without
// inspecting message text.
type APIError struct {
	Status  int    // HTTP status, 0 when no response was received
	Code    string // OData error code, e.g. "Request_ResourceNotFound"
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("graph: %s (status %d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("graph: status %d: %s", e.Status, e.Message)
}

// StatusCode implements device.DirectoryError.
func (e *APIError) StatusCode() int { return e.Status }

// DirectoryCode implements device.DirectoryError.
func (e *APIError) DirectoryCode() string { return e.Code }

// managedDevicesResponse is the shape of the Graph list response.
type managedDevicesResponse struct {
	Value []managedDevice `json:"value"`
}

type managedDevice struct {
	ID              string `json:"id"`
	DeviceName      string `json:"deviceName"`
	OperatingSystem string `json:"operatingSystem"`
}

// odataError is the standard Graph error envelope.
type odataError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ManagedDevice fetches the user's most recently enrolled managed device.
// The directory is asked for exactly one record sorted by enrollment time
// descending; its first result is authoritative. Returns device.ErrNoDevice
// when the user has no enrolled device and device.ErrNoHostname when the
// record carries no device name.
func (c *Client) ManagedDevice(ctx context.Context, accessToken, userPrincipalName string) (device.Record, error) {
	if accessToken == "" || userPrincipalName == "" {
		return device.Record{}, errors.New("access token and user principal name are required")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.devicesURL(userPrincipalName), nil)
	if err != nil {
		return device.Record{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		// Transport failures (DNS, refused connection, timeout) carry no
		// status; classification treats them as network errors.
		return device.Record{}, fmt.Errorf("call managed devices: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return device.Record{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return device.Record{}, apiErrorFromResponse(resp.StatusCode, body)
	}

	var payload managedDevicesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return device.Record{}, fmt.Errorf("decode managed devices response: %w", err)
	}

	if len(payload.Value) == 0 {
		return device.Record{}, fmt.Errorf("%w for user %s", device.ErrNoDevice, userPrincipalName)
	}

	first := payload.Value[0]
	if first.DeviceName == "" {
		return device.Record{}, fmt.Errorf("%w (id %s)", device.ErrNoHostname, first.ID)
	}

	os := first.OperatingSystem
	if os == "" {
		os = "Unknown"
	}

	return device.Record{
		ID:              first.ID,
		Hostname:        first.DeviceName,
		OperatingSystem: os,
	}, nil
}

// devicesURL builds the lookup URL: select only the needed fields, order by
// enrollment time descending, take the first record.
func (c *Client) devicesURL(userPrincipalName string) string {
	q := url.Values{}
	q.Set("$select", "id,deviceName,operatingSystem")
	q.Set("$orderby", "enrolledDateTime desc")
	q.Set("$top", "1")
	return c.baseURL + "/users/" + url.PathEscape(userPrincipalName) + "/managedDevices?" + q.Encode()
}

// apiErrorFromResponse decodes the OData error envelope when present,
// falling back to the raw body.
func apiErrorFromResponse(status int, body []byte) *APIError {
	var envelope odataError
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Code != "" {
		return &APIError{
			Status:  status,
			Code:    envelope.Error.Code,
			Message: envelope.Error.Message,
		}
	}
	return &APIError{
		Status:  status,
		Message: strings.TrimSpace(string(body)),
	}
}
