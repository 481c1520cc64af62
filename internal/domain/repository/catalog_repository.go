package repository

import (
	"context"

	"github.com/jhoicas/cre-directory/internal/domain/entity"
)

// CatalogSource define el puerto de lectura de los dos conjuntos de datos (DIP).
// Load se invoca una vez por carga; el resultado no se modifica después.
type CatalogSource interface {
	// Load devuelve los productos en el orden de la colección y las categorías indexadas por slug.
	Load(ctx context.Context) ([]*entity.Product, map[string]*entity.Category, error)
	// Describe identifica la fuente en logs y en /health.
	Describe() string
}
