package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"translationhub/internal/delivery/http/controllers"
	"translationhub/internal/delivery/http/middleware"
	"translationhub/internal/domain"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Auth         *controllers.AuthController
	Translations *controllers.TranslationController
	Export       *controllers.ExportController
	Locales      *controllers.LocaleController
	Health       *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes.
// Everything except token issuance, health and the Swagger UI requires a bearer token.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /api/auth/token", c.Auth.Token)
	mux.HandleFunc("POST /api/auth/logout", auth(c.Auth.Logout))

	// Translations
	mux.HandleFunc("GET /api/translations", auth(c.Translations.Index))
	mux.HandleFunc("GET /api/translations/search", auth(c.Translations.Search))
	mux.HandleFunc("POST /api/translations", auth(c.Translations.Store))
	mux.HandleFunc("GET /api/translations/{id}", auth(c.Translations.Show))
	mux.HandleFunc("PUT /api/translations/{id}", auth(c.Translations.Update))
	mux.HandleFunc("DELETE /api/translations/{id}", auth(c.Translations.Destroy))

	// Export
	mux.HandleFunc("GET /api/export/{locale}", auth(c.Export.Export))

	mux.HandleFunc("GET /api/locales", auth(c.Locales.Index))
	mux.HandleFunc("GET /api/health", c.Health.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with request id, access logging and CORS, outermost first.
func NewHandler(mux http.Handler, logger *slog.Logger, corsOrigins []string) http.Handler {
	return middleware.RequestID(middleware.LoggingMiddleware(logger, middleware.CORS(corsOrigins, mux)))
}
