package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/cre-directory/internal/domain/entity"
	"github.com/jhoicas/cre-directory/internal/domain/repository"
)

const (
	// ProductsFile lista de productos.
	ProductsFile = "products.json"
	// CategoriesFile índice de categorías por slug.
	CategoriesFile = "categories.json"
)

var _ repository.CatalogSource = (*Source)(nil)

// Source lee el catálogo desde un directorio con products.json y categories.json.
type Source struct {
	dir string
}

// NewSource construye la fuente sobre el directorio de datos.
func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

// Dir directorio de datos.
func (s *Source) Dir() string { return s.dir }

// Describe identifica la fuente en logs y en /health.
func (s *Source) Describe() string { return "file:" + s.dir }

// Load lee ambos archivos. Un JSON mal formado en el nivel superior es error de carga;
// los campos mal formados dentro de cada registro se toleran.
func (s *Source) Load(ctx context.Context) ([]*entity.Product, map[string]*entity.Category, error) {
	var products []*entity.Product
	if err := s.decode(ctx, ProductsFile, &products); err != nil {
		return nil, nil, err
	}
	var categories map[string]*entity.Category
	if err := s.decode(ctx, CategoriesFile, &categories); err != nil {
		return nil, nil, err
	}
	return products, categories, nil
}

// LoadRaw devuelve los documentos sin interpretar, en el orden del archivo (importación a PostgreSQL).
func (s *Source) LoadRaw(ctx context.Context) ([]json.RawMessage, map[string]json.RawMessage, error) {
	var products []json.RawMessage
	if err := s.decode(ctx, ProductsFile, &products); err != nil {
		return nil, nil, err
	}
	var categories map[string]json.RawMessage
	if err := s.decode(ctx, CategoriesFile, &categories); err != nil {
		return nil, nil, err
	}
	return products, categories, nil
}

func (s *Source) decode(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(s.dir, name)
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("leer %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decodificar %s: %w", name, err)
	}
	return nil
}
