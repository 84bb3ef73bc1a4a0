// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/mentorhub/internal/app/system/indexes"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnsureSchema reconciles the indexes the API depends on, including the
// unique (email, role) pair on users and the one-document-per-email
// constraint on progress.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return indexes.EnsureAll(ctx, deps.MongoDatabase)
}
