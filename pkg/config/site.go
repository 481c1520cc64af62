package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SiteConfig textos y ajustes de presentación del sitio (site.yaml).
type SiteConfig struct {
	Title         string     `yaml:"title"`
	Tagline       string     `yaml:"tagline"`
	BaseURL       string     `yaml:"base_url"`
	FeaturedCount int        `yaml:"featured_count"`
	CompareSlots  int        `yaml:"compare_slots"`
	Nav           []NavLink  `yaml:"nav,omitempty"`
	Footer        FooterText `yaml:"footer"`
}

// NavLink entrada del menú principal.
type NavLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// FooterText textos del pie de página.
type FooterText struct {
	Copyright string `yaml:"copyright"`
	Note      string `yaml:"note,omitempty"`
}

// DefaultSite valores usados cuando no hay archivo o faltan claves.
func DefaultSite() *SiteConfig {
	return &SiteConfig{
		Title:         "CRE Software Directory",
		Tagline:       "Find and compare commercial real estate software",
		BaseURL:       "/",
		FeaturedCount: 6,
		CompareSlots:  4,
		Nav: []NavLink{
			{Label: "Categories", URL: "/#categories"},
			{Label: "Compare", URL: "/compare"},
		},
		Footer: FooterText{Copyright: "CRE Software Directory"},
	}
}

// LoadSite lee el YAML del sitio. Ruta vacía o archivo inexistente devuelven los valores por defecto.
func LoadSite(path string) (*SiteConfig, error) {
	def := DefaultSite()
	if path == "" {
		return def, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return def, nil
		}
		return nil, err
	}

	var cfg SiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("site config %s: %w", path, err)
	}

	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.FeaturedCount <= 0 {
		cfg.FeaturedCount = def.FeaturedCount
	}
	if cfg.CompareSlots <= 0 {
		cfg.CompareSlots = def.CompareSlots
	}
	if cfg.Nav == nil {
		cfg.Nav = def.Nav
	}
	if cfg.Footer.Copyright == "" {
		cfg.Footer.Copyright = cfg.Title
	}
	return &cfg, nil
}
