package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jhoicas/cre-directory/internal/application/dto"
	"github.com/jhoicas/cre-directory/internal/application/usecase"
	"github.com/jhoicas/cre-directory/internal/bootstrap"
	"github.com/jhoicas/cre-directory/internal/domain/catalog"
	"github.com/jhoicas/cre-directory/internal/infrastructure/jsonfile"
	infrapdf "github.com/jhoicas/cre-directory/internal/infrastructure/pdf"
	"github.com/jhoicas/cre-directory/internal/infrastructure/postgres"
	"github.com/jhoicas/cre-directory/pkg/config"
	"github.com/jhoicas/cre-directory/pkg/jwt"
	"github.com/jhoicas/cre-directory/pkg/logger"
)

// cli estado compartido por los subcomandos: viper enlazado a los flags globales.
type cli struct {
	v      *viper.Viper
	asJSON bool
	quiet  bool
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}
	c.v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Consultas y mantenimiento del directorio de software CRE",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.String("source", "", "origen del catálogo: file o postgres (CATALOG_SOURCE)")
	pf.String("data-dir", "", "directorio con products.json y categories.json (CATALOG_DATA_DIR)")
	pf.String("log-level", "", "nivel de log (LOG_LEVEL)")
	pf.BoolVar(&c.asJSON, "json", false, "salida JSON")
	pf.BoolVarP(&c.quiet, "quiet", "q", false, "sin logs")
	_ = c.v.BindPFlag("CATALOG_SOURCE", pf.Lookup("source"))
	_ = c.v.BindPFlag("CATALOG_DATA_DIR", pf.Lookup("data-dir"))
	_ = c.v.BindPFlag("LOG_LEVEL", pf.Lookup("log-level"))

	root.AddCommand(
		c.searchCmd(),
		c.showCmd(),
		c.badgesCmd(),
		c.validateCmd(),
		c.comparePDFCmd(),
		c.importCmd(),
		c.tokenCmd(),
	)
	return root
}

func (c *cli) config() (*config.Config, error) {
	return config.FromViper(c.v)
}

func (c *cli) logger(cfg *config.Config) *logger.Logger {
	if c.quiet {
		return logger.Nop()
	}
	return logger.New(logger.Config{Env: "development", Level: cfg.App.LogLevel, Output: os.Stderr})
}

// open carga el catálogo una vez; el cierre libera la conexión si la hay.
func (c *cli) open(ctx context.Context) (*usecase.CatalogUseCase, func(), error) {
	cfg, err := c.config()
	if err != nil {
		return nil, nil, err
	}
	log := c.logger(cfg)
	source, closeFn, err := bootstrap.OpenSource(ctx, cfg.Catalog, cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	site, err := config.LoadSite(cfg.App.SiteConfig)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	uc := usecase.NewCatalogUseCase(source, usecase.CatalogOptions{
		RelatedLimit: cfg.Catalog.RelatedLimit,
		MaxCompare:   cfg.Catalog.MaxCompare,
		PDF:          infrapdf.NewMarotoComparisonGenerator(site.Title),
		Log:          log,
	})
	if err := uc.Reload(ctx); err != nil {
		closeFn()
		return nil, nil, err
	}
	return uc, closeFn, nil
}

func (c *cli) printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ──────────────────────────────────────────────────────────────────────────────
// search
// ──────────────────────────────────────────────────────────────────────────────

func (c *cli) searchCmd() *cobra.Command {
	var in dto.ProductQueryRequest
	cmd := &cobra.Command{
		Use:   "search [texto]",
		Short: "Buscar, filtrar y ordenar productos",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				in.Q = args[0]
			}
			uc, closeFn, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			out, err := uc.Search(in)
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(cmd.OutOrStdout(), out)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SLUG\tNOMBRE\tRATING\tPRECIO\tINSIGNIAS")
			for _, p := range out.Items {
				rating := "-"
				if p.Rating != nil {
					rating = fmt.Sprintf("%.1f", *p.Rating)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.Slug, p.Title, rating, orDash(p.StartingPrice), orDash(strings.Join(p.Badges, ",")))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d de %d productos\n", len(out.Items), out.Page.Total)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Sort, "sort", "", "orden: name, rating, updated, price")
	f.BoolVar(&in.FreeTrial, "free-trial", false, "solo con prueba gratis")
	f.BoolVar(&in.FreeTier, "free-tier", false, "solo con plan gratuito")
	f.BoolVar(&in.HasPricing, "has-pricing", false, "solo con precio publicado")
	f.StringVar(&in.PropertyType, "property-type", "", "tipo de inmueble")
	f.IntVar(&in.Limit, "limit", 20, "máximo de resultados")
	f.IntVar(&in.Offset, "offset", 0, "desplazamiento")
	return cmd
}

// ──────────────────────────────────────────────────────────────────────────────
// show
// ──────────────────────────────────────────────────────────────────────────────

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <slug>",
		Short: "Ficha de un producto con sus relacionados",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closeFn, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			p, err := uc.GetProduct(args[0])
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("producto %q no encontrado", args[0])
			}
			if c.asJSON {
				return c.printJSON(cmd.OutOrStdout(), p)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s (%s)\n%s\n\n", p.Title, p.Slug, p.Summary)
			names := make([]string, 0, len(p.CategoryLinks))
			for _, l := range p.CategoryLinks {
				names = append(names, l.Name)
			}
			fmt.Fprintf(w, "Categorías:        %s\n", orDash(strings.Join(names, ", ")))
			fmt.Fprintf(w, "Tipos de inmueble: %s\n", orDash(strings.Join(p.Audience.PropertyTypes, ", ")))
			fmt.Fprintf(w, "Precio:            %s\n", orDash(strings.TrimSpace(p.PricingModel+" "+p.StartingPrice)))
			fmt.Fprintf(w, "Insignias:         %s\n", orDash(strings.Join(p.Badges, ", ")))
			for _, g := range p.Related {
				slugs := make([]string, 0, len(g.Items))
				for _, it := range g.Items {
					slugs = append(slugs, it.Slug)
				}
				fmt.Fprintf(w, "Más en %s: %s\n", g.Category.Name, strings.Join(slugs, ", "))
			}
			return nil
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// badges
// ──────────────────────────────────────────────────────────────────────────────

func (c *cli) badgesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "badges",
		Short: "Productos con cada insignia",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, closeFn, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			groups := uc.Home(0).Badges
			if c.asJSON {
				return c.printJSON(cmd.OutOrStdout(), groups)
			}
			for _, g := range groups {
				slugs := make([]string, 0, len(g.Items))
				for _, it := range g.Items {
					slugs = append(slugs, it.Slug)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d): %s\n", g.Label, len(g.Items), strings.Join(slugs, ", "))
			}
			return nil
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// validate
// ──────────────────────────────────────────────────────────────────────────────

func (c *cli) validateCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Revisar la consistencia entre productos y categorías",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			source, closeFn, err := bootstrap.OpenSource(cmd.Context(), cfg.Catalog, cfg.DB)
			if err != nil {
				return err
			}
			defer closeFn()

			products, categories, err := source.Load(cmd.Context())
			if err != nil {
				return err
			}
			issues := catalog.Validate(products, categories)
			if c.asJSON {
				if err := c.printJSON(cmd.OutOrStdout(), issues); err != nil {
					return err
				}
			} else {
				for _, is := range issues {
					fmt.Fprintln(cmd.OutOrStdout(), is.String())
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d productos, %d categorías, %d observaciones\n", len(products), len(categories), len(issues))
			}
			if strict && len(issues) > 0 {
				return fmt.Errorf("%d observaciones", len(issues))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "terminar con error si hay observaciones")
	return cmd
}

// ──────────────────────────────────────────────────────────────────────────────
// compare-pdf
// ──────────────────────────────────────────────────────────────────────────────

func (c *cli) comparePDFCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "compare-pdf <slug> [slug...]",
		Short: "Generar la hoja comparativa en PDF",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, closeFn, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			body, err := uc.ComparePDF(cmd.Context(), args)
			if err != nil {
				return err
			}
			if output == "" {
				output = "comparacion-" + args[0] + ".pdf"
			}
			if err := os.WriteFile(output, body, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "PDF escrito en %s (%d bytes)\n", output, len(body))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "archivo de salida")
	return cmd
}

// ──────────────────────────────────────────────────────────────────────────────
// import
// ──────────────────────────────────────────────────────────────────────────────

func (c *cli) importCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copiar products.json y categories.json a PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			if !cfg.Catalog.UsesPostgres() {
				return errors.New("import requiere CATALOG_SOURCE=postgres")
			}
			if from == "" {
				from = cfg.Catalog.DataDir
			}
			ctx := cmd.Context()
			products, categories, err := jsonfile.NewSource(from).LoadRaw(ctx)
			if err != nil {
				return err
			}

			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			err = postgres.NewTxRunner(pool).Run(ctx, func(repo *postgres.CatalogRepository) error {
				if err := repo.EnsureSchema(ctx); err != nil {
					return err
				}
				return repo.Replace(ctx, products, categories)
			})
			if err != nil {
				return err
			}
			c.logger(cfg).Info().Int("products", len(products)).Int("categories", len(categories)).Str("from", from).Msg("catálogo importado")
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "directorio de origen (por defecto CATALOG_DATA_DIR)")
	return cmd
}

// ──────────────────────────────────────────────────────────────────────────────
// token
// ──────────────────────────────────────────────────────────────────────────────

func (c *cli) tokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emitir un token de operador para POST /admin/reload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			if cfg.Catalog.AdminSecret == "" {
				return errors.New("CATALOG_ADMIN_SECRET no está definido")
			}
			tok, err := jwt.Generate(cfg.Catalog.AdminSecret, subject, jwt.ScopeReload, cfg.App.Name, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "operator", "sujeto del token")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "vigencia")
	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
