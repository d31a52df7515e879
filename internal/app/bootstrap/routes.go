// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/AS-Danish/secure-future-hero/internal/app/content"
	adminfeature "github.com/AS-Danish/secure-future-hero/internal/app/features/admin"
	errorsfeature "github.com/AS-Danish/secure-future-hero/internal/app/features/errors"
	healthfeature "github.com/AS-Danish/secure-future-hero/internal/app/features/health"
	sitefeature "github.com/AS-Danish/secure-future-hero/internal/app/features/site"
	uploadsfeature "github.com/AS-Danish/secure-future-hero/internal/app/features/uploads"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/flash"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the API client, and any Startup
// hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the content API client bundled in Deps
//   - logger: the fully configured zap.Logger for this app
//
// The handler tree has three areas: the public site at /, the content
// dashboard at /admin, and the upload proxy at /admin/uploads. All form
// posts go through gorilla/csrf, and flash messages ride a short-lived
// session cookie.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"

	// Flash message store backed by a session cookie.
	fl, err := flash.NewStore(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("flash store init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// CSRF protection for all non-safe methods. Templates embed the
	// token in forms; the upload helper sends it as a header.
	r.Use(csrf.Protect([]byte(appCfg.CSRFKey),
		csrf.Secure(secure),
		csrf.Path("/"),
	))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.APIClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "static"))

	// Content dashboard: one handler drives every collection through
	// its definition.
	defs := content.Definitions(deps.APIClient)
	adminHandler := adminfeature.NewHandler(defs, fl, errLog, logger)
	r.Mount("/admin", adminfeature.Routes(adminHandler))

	// Image upload proxy used by the dashboard's image fields.
	uploadsHandler := uploadsfeature.NewHandler(deps.APIClient, appCfg.UploadMaxBytes, logger)
	r.Mount("/admin/uploads", uploadsfeature.Routes(uploadsHandler))

	// Public site (home, blogs, courses, workshops)
	siteHandler := sitefeature.NewHandler(deps.APIClient, fl, errLog, logger)
	r.Mount("/", sitefeature.Routes(siteHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
