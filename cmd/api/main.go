package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	_ "github.com/jhoicas/cre-directory/docs"
	"github.com/jhoicas/cre-directory/internal/application/usecase"
	"github.com/jhoicas/cre-directory/internal/bootstrap"
	"github.com/jhoicas/cre-directory/internal/infrastructure/jsonfile"
	"github.com/jhoicas/cre-directory/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/cre-directory/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/cre-directory/internal/interfaces/http"
	"github.com/jhoicas/cre-directory/pkg/config"
	"github.com/jhoicas/cre-directory/pkg/logger"
)

// @title        CRE Software Directory API
// @version      1.0
// @description  Catálogo de software para real estate comercial: búsqueda, filtros, orden, insignias y comparación.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("source", cfg.Catalog.Source).
		Msg("iniciando aplicación")

	site, err := config.LoadSite(cfg.App.SiteConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración del sitio")
	}

	ctx := context.Background()
	source, closeSource, err := bootstrap.OpenSource(ctx, cfg.Catalog, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("fuente del catálogo")
	}
	defer closeSource()

	recorder := metrics.NewRecorder(cfg.App.Name)
	catalogUC := usecase.NewCatalogUseCase(source, usecase.CatalogOptions{
		RelatedLimit: cfg.Catalog.RelatedLimit,
		MaxCompare:   cfg.Catalog.MaxCompare,
		Metrics:      recorder,
		PDF:          infrapdf.NewMarotoComparisonGenerator(site.Title),
		Log:          log,
	})

	// Sin datos el sitio arranca vacío; /admin/reload o el watcher lo completan después.
	if err := catalogUC.Reload(ctx); err != nil {
		log.Error().Err(err).Msg("carga inicial del catálogo")
	}

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	if cfg.Catalog.Watch && !cfg.Catalog.UsesPostgres() {
		w, err := jsonfile.NewWatcher(cfg.Catalog.DataDir, catalogUC, 0, log)
		if err != nil {
			log.Fatal().Err(err).Msg("watcher de datos")
		}
		if err := w.Start(watchCtx); err != nil {
			log.Error().Err(err).Msg("no se pudo observar el directorio de datos")
		}
		defer w.Stop()
	}

	deps := httpRouter.RouterDeps{
		AppName:     cfg.App.Name,
		Catalog:     catalogUC,
		Site:        site,
		Metrics:     recorder.Handler(),
		AdminReload: cfg.Catalog.AdminReload,
		AdminSecret: cfg.Catalog.AdminSecret,
		Log:         log,
	}
	app := httpRouter.NewApp(deps)

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRE Software Directory API",
	}))
	httpRouter.NotFound(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
