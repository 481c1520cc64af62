package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cre-directory/internal/application/dto"
)

// RequireFeature devuelve un middleware que corta la petición cuando la funcionalidad
// está deshabilitada por configuración (p. ej. CATALOG_ADMIN_RELOAD=false).
//
// Comportamiento:
//   - 403 Forbidden → funcionalidad deshabilitada.
//   - En otro caso continúa la cadena.
func RequireFeature(name string, enabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !enabled {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FEATURE_DISABLED",
				Message: "la funcionalidad '" + name + "' no está habilitada",
			})
		}
		return c.Next()
	}
}
