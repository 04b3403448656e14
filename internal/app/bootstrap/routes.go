// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	adminfeature "github.com/motadesign/folio/internal/app/features/admin"
	contentapifeature "github.com/motadesign/folio/internal/app/features/contentapi"
	errorsfeature "github.com/motadesign/folio/internal/app/features/errors"
	healthfeature "github.com/motadesign/folio/internal/app/features/health"
	loginfeature "github.com/motadesign/folio/internal/app/features/login"
	logoutfeature "github.com/motadesign/folio/internal/app/features/logout"
	sitefeature "github.com/motadesign/folio/internal/app/features/site"
	uploadapifeature "github.com/motadesign/folio/internal/app/features/uploadapi"
	appresources "github.com/motadesign/folio/internal/app/resources"
	draftstore "github.com/motadesign/folio/internal/app/store/drafts"
	portfoliostore "github.com/motadesign/folio/internal/app/store/portfolio"
	"github.com/motadesign/folio/internal/app/store/ratelimit"
	"github.com/motadesign/folio/internal/app/system/auth"
	"github.com/motadesign/folio/internal/app/system/authutil"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// The route surface splits in two:
//   - Public site and admin dashboard: operator session auth + CSRF
//   - /api/* routes: operator session or Bearer API key, no CSRF,
//     permissive CORS (applied inside the feature routers)
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
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

	// Resolve the operator password hash. In dev a plaintext password may
	// be configured instead; it is hashed here so the login handler only
	// ever sees a bcrypt hash. ValidateConfig rejects the plaintext form
	// in prod.
	passwordHash := appCfg.AdminPasswordHash
	if passwordHash == "" {
		passwordHash, err = authutil.HashPassword(appCfg.AdminPassword)
		if err != nil {
			logger.Error("failed to hash operator password", zap.Error(err))
			return nil, err
		}
		logger.Warn("using admin_password from config; set admin_password_hash for production")
	}

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	// Content stores: the published document plus per-session drafts.
	contentStore := portfoliostore.New(deps.MongoDatabase)
	draftStore := draftstore.New(deps.MongoDatabase)

	r := chi.NewRouter()

	// ─────────────────────────────────────────────────────────────────────────────
	// Global Middleware (applies to ALL routes)
	// ─────────────────────────────────────────────────────────────────────────────

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// Session middleware: loads the Operator into context if logged in.
	// API and public site routes simply have no operator, which is fine.
	r.Use(sessionMgr.LoadOperator)

	// CSRF protection middleware with path-based exemption for API routes.
	// Cookie name is "folio_csrf" to avoid collisions with other services
	// on the same domain.
	csrfOpts := []csrf.Option{
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.CookieName("folio_csrf"),
		csrf.FieldName("csrf_token"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Warn("CSRF validation failed",
				zap.String("path", req.URL.Path),
				zap.String("method", req.Method),
				zap.String("reason", csrf.FailureReason(req).Error()),
			)
			if req.Header.Get("HX-Request") == "true" {
				w.Header().Set("HX-Redirect", "/admin/login")
				w.WriteHeader(http.StatusForbidden)
				return
			}
			http.Error(w, "CSRF token invalid or missing", http.StatusForbidden)
		})),
	}
	// In dev mode, trust localhost origins for CSRF validation.
	trustedOrigins := []string{
		"localhost:8080",
		"localhost:3000",
		"127.0.0.1:8080",
		"127.0.0.1:3000",
	}
	if !secure {
		csrfOpts = append(csrfOpts, csrf.TrustedOrigins(trustedOrigins))
	}
	if appCfg.SessionDomain != "" {
		csrfOpts = append(csrfOpts, csrf.Domain(appCfg.SessionDomain))
	}
	csrfProtect := csrf.Protect([]byte(appCfg.CSRFKey), csrfOpts...)

	// Wrap CSRF middleware to skip for /api/* routes: they authenticate
	// with a Bearer API key or a session via JS, not with form tokens.
	csrfMiddleware := func(next http.Handler) http.Handler {
		csrfHandler := csrfProtect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if strings.HasPrefix(req.URL.Path, "/api/") {
				next.ServeHTTP(w, req)
				return
			}
			csrfHandler.ServeHTTP(w, req)
		})
	}
	r.Use(csrfMiddleware)

	// ─────────────────────────────────────────────────────────────────────────────
	// Routes
	// ─────────────────────────────────────────────────────────────────────────────

	// Content API: GET is public (the site and any external consumer read
	// it), mutations require the operator session or a Bearer API key.
	contentapiHandler := contentapifeature.NewHandler(contentStore, logger)
	r.Mount("/api/content", contentapifeature.Routes(contentapiHandler, appCfg.APIKey, logger))

	// Upload API: image uploads from the admin dashboard.
	uploadapiHandler := uploadapifeature.NewHandler(deps.FileStorage, logger)
	r.Mount("/api/upload", uploadapifeature.Routes(uploadapiHandler, appCfg.APIKey, logger))

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// /assets/* serves embedded assets (bundled into the binary)
	r.Handle("/assets/*", appresources.AssetsHandler("/assets"))

	// Uploaded files (local storage only)
	// When using local storage, serve files from the configured path
	if appCfg.StorageType == "local" || appCfg.StorageType == "" {
		r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))
	}

	// Rate limiting for login attempts (nil if disabled)
	var rateLimitStore *ratelimit.Store
	if appCfg.RateLimitEnabled {
		rateLimitStore = ratelimit.New(
			deps.MongoDatabase,
			appCfg.RateLimitLoginAttempts,
			appCfg.RateLimitLoginWindow,
			appCfg.RateLimitLoginLockout,
		)
	}

	// Operator authentication
	loginHandler := loginfeature.NewHandler(passwordHash, sessionMgr, rateLimitStore, errLog, logger)
	r.Mount("/admin/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, draftStore, logger)
	r.Mount("/admin/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	// Admin dashboard (operator only)
	adminHandler := adminfeature.NewHandler(contentStore, draftStore, errLog, logger)
	r.Mount("/admin", adminfeature.Routes(adminHandler, sessionMgr))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Public site
	siteHandler := sitefeature.NewHandler(contentStore, logger)
	r.Mount("/", sitefeature.Routes(siteHandler))

	// 404 catch-all for unmatched routes
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
