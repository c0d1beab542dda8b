package device

// Package device contains domain types for the managed-device lookup flow:
// the device record, failure classification, and the fetch state machine's
// state as a tagged sum type.

// Record is a managed device as returned by the directory.
// Immutable once fetched; held only for the duration of a page visit.
type Record struct {
	ID              string
	Hostname        string
	OperatingSystem string
}

// FailureKind classifies why a directory lookup failed. The kind drives
// both the user-facing message and whether a retry is offered.
type FailureKind string

const (
	// FailureAuthRequired means the session lacked an access token or UPN.
	FailureAuthRequired FailureKind = "auth_required"
	// FailureNetwork covers connectivity, DNS, and timeout failures.
	FailureNetwork FailureKind = "network"
	// FailureUnauthorized covers HTTP 401/403 from the directory.
	FailureUnauthorized FailureKind = "unauthorized"
	// FailureNotFoundUser means the user is absent from the directory.
	FailureNotFoundUser FailureKind = "not_found_user"
	// FailureNotFoundDevice means the user exists but has no managed device.
	FailureNotFoundDevice FailureKind = "not_found_device"
	// FailureServer covers HTTP 5xx from the directory.
	FailureServer FailureKind = "server"
	// FailureUnknown covers everything else; Message carries the detail.
	FailureUnknown FailureKind = "unknown"
)

// FailureReason is the classified outcome of a failed lookup.
type FailureReason struct {
	Kind    FailureKind
	Message string // original message, kept for FailureUnknown detail and logs
}

// Retryable reports whether a user-invoked retry is offered for this reason.
// Unauthorized and not-found classes direct the user elsewhere instead.
func (r FailureReason) Retryable() bool {
	switch r.Kind {
	case FailureNetwork, FailureServer, FailureUnknown:
		return true
	default:
		return false
	}
}

// ReauthRequired reports whether the user should be sent back through sign-in.
func (r FailureReason) ReauthRequired() bool {
	return r.Kind == FailureUnauthorized || r.Kind == FailureAuthRequired
}

// UserMessage returns the localized message shown for this failure.
func (r FailureReason) UserMessage() string {
	switch r.Kind {
	case FailureAuthRequired:
		return "Se requiere iniciar sesión para consultar tu dispositivo."
	case FailureNetwork:
		return "No se pudo obtener la información del dispositivo. Por favor, inténtalo de nuevo más tarde."
	case FailureUnauthorized:
		return "Tu sesión ha expirado o no tienes permisos suficientes. Vuelve a iniciar sesión."
	case FailureNotFoundUser:
		return "Tu usuario no se encontró en el directorio. Contacta al soporte técnico."
	case FailureNotFoundDevice:
		return "No se encontró un dispositivo asignado a tu usuario en Intune."
	case FailureServer:
		return "El servicio de dispositivos no está disponible en este momento. Inténtalo de nuevo más tarde."
	default:
		if r.Message != "" {
			return r.Message
		}
		return "No se pudo obtener la información del dispositivo. Por favor, inténtalo de nuevo más tarde."
	}
}

// Phase identifies the variant a FetchState holds.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseLoaded  Phase = "loaded"
	PhaseFailed  Phase = "failed"
)

// FetchState is a tagged variant over Idle | Loading | Loaded(Record) |
// Failed(FailureReason). The fields are unexported so a record and a failure
// reason can never be populated at the same time: the only way to hold a
// record is through Loaded, and the only way to hold a reason is through
// Failed.
type FetchState struct {
	phase  Phase
	record Record
	reason FailureReason
}

// Idle returns the initial state.
func Idle() FetchState { return FetchState{phase: PhaseIdle} }

// Loading returns the in-flight state.
func Loading() FetchState { return FetchState{phase: PhaseLoading} }

// Loaded returns a state holding the fetched record.
func Loaded(rec Record) FetchState { return FetchState{phase: PhaseLoaded, record: rec} }

// Failed returns a state holding the classified failure.
func Failed(reason FailureReason) FetchState { return FetchState{phase: PhaseFailed, reason: reason} }

// Phase returns the variant tag.
func (s FetchState) Phase() Phase { return s.phase }

func (s FetchState) IsIdle() bool    { return s.phase == PhaseIdle || s.phase == "" }
func (s FetchState) IsLoading() bool { return s.phase == PhaseLoading }
func (s FetchState) IsLoaded() bool  { return s.phase == PhaseLoaded }
func (s FetchState) IsFailed() bool  { return s.phase == PhaseFailed }

// Record returns the device record and true when the state is Loaded.
func (s FetchState) Record() (Record, bool) {
	if s.phase != PhaseLoaded {
		return Record{}, false
	}
	return s.record, true
}

// Reason returns the failure reason and true when the state is Failed.
func (s FetchState) Reason() (FailureReason, bool) {
	if s.phase != PhaseFailed {
		return FailureReason{}, false
	}
	return s.reason, true
}

// AgreementDecision is the boolean outcome of the agreement form.
type AgreementDecision struct {
	Signed bool
}
