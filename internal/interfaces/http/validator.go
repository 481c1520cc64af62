package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cre-directory/internal/application/dto"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// parseProductQuery lee y valida los parámetros de búsqueda. Devuelve nil si son válidos.
func parseProductQuery(c *fiber.Ctx, in *dto.ProductQueryRequest) *dto.ErrorResponse {
	if err := c.QueryParser(in); err != nil {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de consulta inválidos"}
	}
	in.Q = strings.TrimSpace(in.Q)
	in.Sort = strings.ToLower(strings.TrimSpace(in.Sort))
	if err := validate.Struct(in); err != nil {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)}
	}
	return nil
}

// validationMessage resume los errores del validador en un mensaje legible.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s debe ser uno de: %s", field, e.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s debe ser >= %s", field, e.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s excede el máximo (%s)", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s inválido", field))
		}
	}
	return strings.Join(msgs, "; ")
}

// splitSlugs separa "a,b,,c" en slugs no vacíos.
func splitSlugs(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
