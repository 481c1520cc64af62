package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// importLockKey clave del advisory lock que serializa importaciones concurrentes.
const importLockKey int64 = 0x63726564697200

// TxRunner ejecuta una importación del catálogo como una única transacción.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run toma el lock de importación, ejecuta fn con un repositorio atado a la tx y hace Commit.
// Ante cualquier error la tx se revierte y los lectores siguen viendo el catálogo anterior.
func (r *TxRunner) Run(ctx context.Context, fn func(repo *CatalogRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("iniciar transacción: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, importLockKey); err != nil {
		return fmt.Errorf("lock de importación: %w", err)
	}
	if err := fn(NewCatalogRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("confirmar importación: %w", err)
	}
	return nil
}
