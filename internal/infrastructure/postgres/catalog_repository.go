package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cre-directory/internal/domain/entity"
	"github.com/jhoicas/cre-directory/internal/domain/repository"
)

var _ repository.CatalogSource = (*CatalogRepository)(nil)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS catalog_products (
	position INTEGER PRIMARY KEY,
	doc      JSONB   NOT NULL
);
CREATE TABLE IF NOT EXISTS catalog_categories (
	slug TEXT  PRIMARY KEY,
	doc  JSONB NOT NULL
);`

// CatalogRepository fuente del catálogo sobre PostgreSQL: cada producto y categoría se guarda
// como documento JSONB con la misma forma que los archivos JSON. Usable con pool o tx (Querier).
type CatalogRepository struct {
	q Querier
}

// NewCatalogRepository construye el adaptador. Pasar pool o tx.
func NewCatalogRepository(q Querier) *CatalogRepository {
	return &CatalogRepository{q: q}
}

// Describe identifica la fuente.
func (r *CatalogRepository) Describe() string { return "postgres" }

// EnsureSchema crea las tablas si no existen.
func (r *CatalogRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}

// Load lee productos en orden de posición y el índice de categorías.
func (r *CatalogRepository) Load(ctx context.Context) ([]*entity.Product, map[string]*entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT doc FROM catalog_products ORDER BY position`)
	if err != nil {
		return nil, nil, fmt.Errorf("listar productos: %w", err)
	}
	docs, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return nil, nil, fmt.Errorf("leer productos: %w", err)
	}
	products, err := decodeProducts(docs)
	if err != nil {
		return nil, nil, err
	}

	rows, err = r.q.Query(ctx, `SELECT slug, doc FROM catalog_categories`)
	if err != nil {
		return nil, nil, fmt.Errorf("listar categorías: %w", err)
	}
	byslug := map[string][]byte{}
	var (
		slug string
		doc  []byte
	)
	_, err = pgx.ForEachRow(rows, []any{&slug, &doc}, func() error {
		byslug[slug] = append([]byte(nil), doc...)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("leer categorías: %w", err)
	}
	categories, err := decodeCategories(byslug)
	if err != nil {
		return nil, nil, err
	}
	return products, categories, nil
}

// Replace sustituye el contenido completo de ambas tablas. Llamar dentro de TxRunner.Run.
func (r *CatalogRepository) Replace(ctx context.Context, products []json.RawMessage, categories map[string]json.RawMessage) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM catalog_products`); err != nil {
		return fmt.Errorf("vaciar productos: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM catalog_categories`); err != nil {
		return fmt.Errorf("vaciar categorías: %w", err)
	}
	for i, doc := range products {
		if _, err := r.q.Exec(ctx, `INSERT INTO catalog_products (position, doc) VALUES ($1, $2)`, i, []byte(doc)); err != nil {
			return fmt.Errorf("insertar producto %d: %w", i, err)
		}
	}
	for slug, doc := range categories {
		if _, err := r.q.Exec(ctx, `INSERT INTO catalog_categories (slug, doc) VALUES ($1, $2)`, slug, []byte(doc)); err != nil {
			return fmt.Errorf("insertar categoría %s: %w", slug, err)
		}
	}
	return nil
}

func decodeProducts(docs [][]byte) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(docs))
	for i, doc := range docs {
		var p entity.Product
		if err := json.Unmarshal(doc, &p); err != nil {
			return nil, fmt.Errorf("producto en posición %d: %w", i, err)
		}
		out = append(out, &p)
	}
	return out, nil
}

func decodeCategories(docs map[string][]byte) (map[string]*entity.Category, error) {
	out := make(map[string]*entity.Category, len(docs))
	for slug, doc := range docs {
		var c entity.Category
		if err := json.Unmarshal(doc, &c); err != nil {
			return nil, fmt.Errorf("categoría %s: %w", slug, err)
		}
		out[slug] = &c
	}
	return out, nil
}
