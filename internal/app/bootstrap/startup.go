// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/AS-Danish/secure-future-hero/internal/app/resources"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/timeouts"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the API client
// is built, but before the HTTP handler is constructed. It is the place
// to load shared resources (like templates) and seed process-wide state
// that handlers read on every request.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	viewdata.Init(appCfg.SiteName)

	// Align the composite page-load budget with the client's own
	// per-request timeout so a slow backend fails in one place.
	timeouts.Configure(timeouts.Config{Long: appCfg.APITimeout})

	return nil
}
