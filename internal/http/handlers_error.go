package httpx

import (
	"net/http"
)

// authErrorMessages maps auth flow error codes to user-facing copy.
//
//nolint:gochecknoglobals // static read-only lookup
var authErrorMessages = map[string]string{
	"Signin":             "Hubo un problema al iniciar sesión. Intenta iniciar sesión con una cuenta diferente.",
	"OAuthSignin":        "Hubo un problema con el proveedor de autenticación OAuth. Intenta iniciar sesión con una cuenta diferente.",
	"OAuthCallback":      "Hubo un problema durante el callback de OAuth. Intenta iniciar sesión con una cuenta diferente.",
	"Callback":           "Hubo un error en la ruta de callback de OAuth.",
	"CredentialsSignin":  "Inicio de sesión fallido. Verifica que los detalles proporcionados sean correctos.",
	"SessionRequired":    "Se requiere iniciar sesión para acceder a esta página.",
	"Configuration":      "Hay un problema con la configuración del servidor de autenticación.",
	"AccessDenied":       "Acceso denegado. No tienes permiso para iniciar sesión o acceder a este recurso.",
	"Verification":       "El token de verificación ha expirado o ya ha sido utilizado.",
	"InvalidCallbackUrl": "URL de Callback inválida. Contacta al administrador.",
	"MissingCSRF":        "Token CSRF inválido o faltante.",
	"CallbackRouteError": "Error en la ruta de callback. Contacta al administrador.",
}

const authErrorDefault = "No se pudo iniciar sesión. Ocurrió un error inesperado."

// AuthErrorMessageFor returns the user-facing message for an auth error code.
func AuthErrorMessageFor(code string) string {
	if msg, ok := authErrorMessages[code]; ok {
		return msg
	}
	return authErrorDefault
}

// ErrorHandlers serves error pages.
type ErrorHandlers struct {
	Renderer *TemplateRenderer
}

// AuthError renders the authentication error page.
// GET /auth/error?error=<code>.
func (h *ErrorHandlers) AuthError(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("error")
	data := map[string]any{
		"Title":        "Error de Autenticación",
		"ErrorTitle":   "Error de Autenticación",
		"ErrorMessage": AuthErrorMessageFor(code),
		"ErrorCode":    code,
	}

	if err := h.Renderer.RenderError(w, r, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
