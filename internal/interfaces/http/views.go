package http

import (
	"embed"
	"io/fs"
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/gofiber/template/html/v2"

	"github.com/jhoicas/cre-directory/internal/domain/entity"
)

//go:embed views
var viewsFS embed.FS

// NewViewEngine motor de plantillas HTML sobre las vistas embebidas.
func NewViewEngine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic("vistas embebidas: " + err.Error())
	}
	engine := html.NewFileSystem(nethttp.FS(sub), ".html")
	engine.AddFuncMap(map[string]any{
		"join":       strings.Join,
		"stars":      stars,
		"badgeLabel": badgeLabel,
	})
	return engine
}

func stars(r *float64) string {
	if r == nil {
		return ""
	}
	return "★ " + strconv.FormatFloat(*r, 'f', 1, 64)
}

func badgeLabel(code string) string {
	for _, b := range entity.AllBadges {
		if b.Code() == code {
			return b.Label()
		}
	}
	return code
}
