package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/cre-directory/internal/domain/repository"
	"github.com/jhoicas/cre-directory/internal/infrastructure/jsonfile"
	"github.com/jhoicas/cre-directory/internal/infrastructure/postgres"
	"github.com/jhoicas/cre-directory/pkg/config"
)

// OpenSource abre la fuente del catálogo según CATALOG_SOURCE.
// El cierre devuelto libera el pool de PostgreSQL; con archivos no hace nada.
func OpenSource(ctx context.Context, cfg config.CatalogConfig, db config.DBConfig) (repository.CatalogSource, func(), error) {
	if !cfg.UsesPostgres() {
		return jsonfile.NewSource(cfg.DataDir), func() {}, nil
	}
	pool, err := postgres.NewPool(ctx, db)
	if err != nil {
		return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	repo := postgres.NewCatalogRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("esquema del catálogo: %w", err)
	}
	return repo, pool.Close, nil
}
