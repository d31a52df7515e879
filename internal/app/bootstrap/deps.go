// internal/app/bootstrap/deps.go
package bootstrap

import (
	"github.com/AS-Danish/secure-future-hero/internal/app/api"
)

// Deps holds back-end dependencies for the app.
//
// This app has no database of its own: every collection lives behind the
// content API, so the shared API client is the only backend dependency.
// Extend this struct as the app evolves.
type Deps struct {
	APIClient *api.Client
}
