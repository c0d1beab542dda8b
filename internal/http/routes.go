package httpx

import (
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"

	deviceagreement "github.com/itsm-tools/device-agreement"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth         AuthServiceInterface
	Devices      DeviceFetchServiceInterface
	Agreements   AgreementServiceInterface
	CookieDomain string
	IsDev        bool         // Development mode flag for template hot reloading
	Logger       *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	renderer, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS(services.IsDev),
		Logger:     services.Logger,
	})
	if err != nil {
		// Templates are compiled into the binary; failing to parse them is a
		// programming error, not a runtime condition.
		log.Fatalf("failed to parse templates: %v", err)
	}

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		Devices:      services.Devices,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}
	portalHandlers := &PortalHandlers{
		Fetch:      services.Devices,
		Agreements: services.Agreements,
		Renderer:   renderer,
		Logger:     services.Logger,
	}
	errorHandlers := &ErrorHandlers{Renderer: renderer}

	requireAuth := RequireAuth(services.Auth)
	optionalAuth := OptionalAuth(services.Auth)

	mux.Handle("GET /{$}", optionalAuth(http.HandlerFunc(portalHandlers.Home)))
	mux.Handle("GET /device/state", requireAuth(http.HandlerFunc(portalHandlers.DevicePanel)))
	mux.Handle("POST /device/retry", requireAuth(http.HandlerFunc(portalHandlers.DeviceRetry)))
	mux.Handle("POST /agreement", requireAuth(http.HandlerFunc(portalHandlers.AgreementSubmit)))

	mux.Handle("GET /auth/login", http.HandlerFunc(authHandlers.Login))
	mux.Handle("GET /auth/callback", http.HandlerFunc(authHandlers.Callback))
	mux.Handle("POST /auth/logout", http.HandlerFunc(authHandlers.Logout))
	mux.Handle("GET /auth/status", http.HandlerFunc(authHandlers.Status))
	mux.Handle("GET /auth/error", http.HandlerFunc(errorHandlers.AuthError))

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// Static assets at /static
	// Dev mode: serve from disk for hot reloading
	// Prod mode: serve from embedded FS
	mux.Handle("GET /static/", staticHandler(services.IsDev))

	return CSRFProtection(CSRFConfig{CookieDomain: services.CookieDomain})(mux)
}

// templateFS returns the template filesystem for the current mode.
func templateFS(isDev bool) fs.FS {
	if isDev {
		return os.DirFS(TemplatePathFromRoot)
	}

	sub, err := fs.Sub(deviceagreement.TemplateFS, "frontend/templates")
	if err != nil {
		log.Printf("failed to create sub-filesystem for templates: %v; falling back to disk", err)
		return os.DirFS(TemplatePathFromRoot)
	}
	return sub
}

// staticHandler serves /static/* assets.
// In dev mode (isDev=true), serves from disk for hot reloading.
// In production mode (isDev=false), serves from embedded FS.
func staticHandler(isDev bool) http.Handler {
	if isDev {
		return http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static")))
	}

	staticSub, err := fs.Sub(deviceagreement.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v; falling back to disk", err)
		return http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static")))
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(staticSub)))
}
