package http

import (
	"errors"
	nethttp "net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/cre-directory/internal/application/dto"
	"github.com/jhoicas/cre-directory/internal/application/usecase"
	"github.com/jhoicas/cre-directory/pkg/config"
	"github.com/jhoicas/cre-directory/pkg/jwt"
	"github.com/jhoicas/cre-directory/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName     string
	Catalog     *usecase.CatalogUseCase
	Site        *config.SiteConfig
	Metrics     nethttp.Handler // nil = sin /metrics
	AdminReload bool
	AdminSecret string // vacío = /admin/reload sin token
	Log         *logger.Logger
}

// NewApp construye la aplicación Fiber con motor de vistas, middlewares comunes y rutas.
// La documentación Swagger se monta aparte en main (necesita docs/swagger.json en disco).
func NewApp(deps RouterDeps) *fiber.App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		Views:        NewViewEngine(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(RequestLogger(deps.Log))
	Router(app, deps)
	return app
}

// Router registra las rutas de la API, operativas y de vistas.
func Router(app *fiber.App, deps RouterDeps) {
	catalogHandler := NewCatalogHandler(deps.Catalog)
	viewHandler := NewViewHandler(deps.Catalog, deps.Site)

	app.Get("/health", catalogHandler.Health(deps.AppName))
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}
	app.Post("/admin/reload",
		RequireFeature("admin_reload", deps.AdminReload),
		OperatorAuth(deps.AdminSecret, jwt.ScopeReload),
		catalogHandler.Reload,
	)

	api := app.Group("/api")

	products := api.Group("/products")
	products.Get("/", catalogHandler.ListProducts)
	products.Get("/:slug", catalogHandler.GetProduct)

	categories := api.Group("/categories")
	categories.Get("/", catalogHandler.ListCategories)
	categories.Get("/:slug", catalogHandler.GetCategory)

	api.Get("/compare", catalogHandler.Compare)
	api.Get("/compare/pdf", catalogHandler.ComparePDF)
	api.Get("/facets", catalogHandler.Facets)
	api.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ruta no encontrada"})
	})

	// Vistas HTML
	app.Get("/", viewHandler.Home)
	app.Get("/products/:slug", viewHandler.Product)
	app.Get("/categories/:slug", viewHandler.Category)
	app.Get("/compare", viewHandler.Compare)
}

// NotFound registra la página 404 HTML; debe llamarse después de montar todas las rutas.
func NotFound(app *fiber.App, deps RouterDeps) {
	app.Use(NewViewHandler(deps.Catalog, deps.Site).NotFound)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	errCode := "INTERNAL"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		if code == fiber.StatusNotFound {
			errCode = "NOT_FOUND"
		}
	}
	return c.Status(code).JSON(dto.ErrorResponse{Code: errCode, Message: err.Error()})
}
