package catalog

import (
	"regexp"
	"strings"
)

var (
	slugStrip  = regexp.MustCompile(`[^\w\s-]`)
	slugSpaces = regexp.MustCompile(`[\s_]+`)
	slugDashes = regexp.MustCompile(`-+`)
)

// Slugify convierte un nombre de categoría en slug ("CRM & Marketing" -> "crm-marketing").
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

var logoPalette = []string{
	"#4361ee", "#e74c3c", "#2ecc71", "#f39c12", "#9b59b6",
	"#1abc9c", "#e67e22", "#3498db", "#e91e63", "#00bcd4",
}

// LogoColor color estable del logo de respaldo, derivado del título.
func LogoColor(title string) string {
	var h int32
	for _, r := range title {
		h = int32(r) + (h << 5) - h
	}
	n := int(h)
	if n < 0 {
		n = -n
	}
	return logoPalette[n%len(logoPalette)]
}

// Initial letra del logo de respaldo.
func Initial(title string) string {
	for _, r := range strings.ToUpper(title) {
		return string(r)
	}
	return "?"
}
