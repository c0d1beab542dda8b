package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	domainauth "github.com/itsm-tools/device-agreement/internal/domain/auth"
	"github.com/itsm-tools/device-agreement/internal/domain/device"
	"github.com/itsm-tools/device-agreement/internal/service"
)

// DeviceFetchServiceInterface defines the device retrieval operations the
// portal handlers need.
type DeviceFetchServiceInterface interface {
	State(sessionID string) device.FetchState
	Fetch(ctx context.Context, sess domainauth.Session) device.FetchState
	Retry(ctx context.Context, sess domainauth.Session) device.FetchState
	Reset(sessionID string)
}

// AgreementServiceInterface defines the agreement submission operation.
type AgreementServiceInterface interface {
	Submit(ctx context.Context, decision device.AgreementDecision, sess domainauth.Session, record device.Record) error
}

// PortalHandlers serves the browser-facing portal routes.
type PortalHandlers struct {
	Fetch      DeviceFetchServiceInterface
	Agreements AgreementServiceInterface
	Renderer   *TemplateRenderer
	Logger     *slog.Logger
}

func (h *PortalHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Home renders the portal root. Unauthenticated visitors get the sign-in
// view; authenticated ones get the device panel, kicking off the directory
// lookup if this session has not started one yet.
// GET /.
func (h *PortalHandlers) Home(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		data := basePageData(r, PageMeta{
			Title:       "Portal de Equipos",
			PageTitle:   "Bienvenido",
			CurrentPage: PageSignin,
		})
		h.render(w, r, data)
		return
	}

	state := h.Fetch.Fetch(r.Context(), *session)

	data := basePageData(r, PageMeta{
		Title:       "Portal de Equipos",
		PageTitle:   "Acta de Entrega de Equipo",
		CurrentPage: PageHome,
	})
	addDeviceStateData(data, state)
	h.render(w, r, data)
}

// DevicePanel returns the device panel fragment for the current fetch state.
// The loading panel polls this endpoint until the lookup settles.
// GET /device/state.
func (h *PortalHandlers) DevicePanel(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	// Fetch instead of State so a panel reached by direct navigation still
	// starts the lookup; it is a no-op for any non-idle session.
	state := h.Fetch.Fetch(r.Context(), *session)
	h.renderDevicePanel(w, r, state)
}

// DeviceRetry re-runs the directory lookup after a retryable failure.
// POST /device/retry.
func (h *PortalHandlers) DeviceRetry(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	state := h.Fetch.Retry(r.Context(), *session)
	h.renderDevicePanel(w, r, state)
}

// AgreementSubmit records the signed usage agreement for the loaded device.
// POST /agreement.
func (h *PortalHandlers) AgreementSubmit(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())

	state := h.Fetch.State(session.ID)
	record, loaded := state.Record()
	if !loaded {
		// The form is only rendered for a loaded device; hitting this means
		// the session state moved (sign-out elsewhere, retry in another tab).
		h.renderDevicePanel(w, r, state)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderAgreementError(w, r, record, "No se pudo procesar el formulario. Intenta de nuevo.")
		return
	}

	decision := device.AgreementDecision{Signed: r.FormValue("accept_terms") == "on"}
	err := h.Agreements.Submit(r.Context(), decision, *session, record)
	switch {
	case errors.Is(err, service.ErrAgreementNotSigned):
		h.renderAgreementError(w, r, record, "Debes aceptar los términos para continuar.")
		return
	case err != nil:
		h.logger().ErrorContext(r.Context(), "agreement submission failed",
			"session_id", session.ID, "error", err)
		h.renderAgreementError(w, r, record, "No se pudo registrar el acta. Intenta de nuevo.")
		return
	}

	SetHXTrigger(w, "showToast", map[string]string{
		"message": "Acta firmada correctamente.",
		"type":    "success",
	})

	data := map[string]any{"Device": deviceData(record)}
	if err := h.Renderer.RenderNamed(w, "agreement-signed", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// render writes a full page or just the content fragment for htmx requests.
func (h *PortalHandlers) render(w http.ResponseWriter, r *http.Request, data map[string]any) {
	var err error
	if WantsPartial(r) {
		err = h.Renderer.RenderPartial(w, r, data)
	} else {
		err = h.Renderer.RenderFull(w, r, data)
	}
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// renderDevicePanel writes the device panel fragment for the given state.
func (h *PortalHandlers) renderDevicePanel(w http.ResponseWriter, r *http.Request, state device.FetchState) {
	data := map[string]any{}
	if csrfToken := GetCSRFToken(r); csrfToken != "" {
		data["CSRFToken"] = csrfToken
	}
	addDeviceStateData(data, state)
	if err := h.Renderer.RenderNamed(w, "device-panel", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// renderAgreementError re-renders the agreement form with an error banner.
func (h *PortalHandlers) renderAgreementError(w http.ResponseWriter, r *http.Request, record device.Record, message string) {
	data := map[string]any{
		"Device":         deviceData(record),
		"AgreementError": message,
	}
	if csrfToken := GetCSRFToken(r); csrfToken != "" {
		data["CSRFToken"] = csrfToken
	}
	if err := h.Renderer.RenderNamed(w, "agreement-form", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// addDeviceStateData flattens a fetch state into template fields.
func addDeviceStateData(data map[string]any, state device.FetchState) {
	data["Phase"] = string(state.Phase())
	if record, ok := state.Record(); ok {
		data["Device"] = deviceData(record)
	}
	if reason, ok := state.Reason(); ok {
		data["Failure"] = map[string]any{
			"Message":        reason.UserMessage(),
			"Retryable":      reason.Retryable(),
			"ReauthRequired": reason.ReauthRequired(),
		}
	}
}

func deviceData(record device.Record) map[string]string {
	return map[string]string{
		"ID":              record.ID,
		"Hostname":        record.Hostname,
		"OperatingSystem": record.OperatingSystem,
	}
}
