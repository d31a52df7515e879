// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level and format, and request body size limits.
// AppConfig is where everything specific to this application lives: the
// content API endpoint, upload limits, session and CSRF secrets, and
// site presentation defaults.
type AppConfig struct {
	// Content API configuration. All site and admin data lives behind
	// this REST backend; the app holds no database of its own.
	APIBaseURL string        // Base URL of the content API (e.g., http://localhost:5000)
	APITimeout time.Duration // Total per-request timeout for content API calls

	// Upload configuration
	UploadMaxBytes int64 // Maximum accepted image upload size in bytes

	// Session management configuration (used for flash messages)
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: securefuture-session)
	SessionDomain string // Cookie domain (blank means current host)

	// CSRF protection
	CSRFKey string // 32-byte secret for CSRF token generation

	// Site presentation
	SiteName string // Display name used in page titles and navigation
}
