// internal/app/bootstrap/connect.go
package bootstrap

import (
	"context"

	"github.com/AS-Danish/secure-future-hero/internal/app/api"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the content API client.
//
// WAFFLE calls this hook where a database-backed app would open its
// connection pool. Constructing the client here means every later hook
// (schema checks, startup, handler wiring) receives a ready client in
// Deps, and config errors surface before the server starts listening.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	client, err := api.NewClient(appCfg.APIBaseURL, appCfg.APITimeout, logger)
	if err != nil {
		logger.Error("content API client init failed", zap.Error(err))
		return Deps{}, err
	}

	logger.Info("content API client ready", zap.String("base_url", client.BaseURL()))
	return Deps{APIClient: client}, nil
}

// EnsureSchema verifies the backend is reachable.
//
// The content API owns its own schema, so there is nothing to migrate
// here. A failed ping is logged but does not abort startup: the site
// renders with empty collections while the backend is down, and the
// health endpoint reports the degraded state.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()

	if err := deps.APIClient.Ping(pingCtx); err != nil {
		logger.Warn("content API unreachable at startup; continuing degraded",
			zap.String("base_url", deps.APIClient.BaseURL()),
			zap.Error(err))
	}
	return nil
}
