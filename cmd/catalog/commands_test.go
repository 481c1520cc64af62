package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cre-directory/internal/application/dto"
	"github.com/jhoicas/cre-directory/pkg/jwt"
)

const (
	testProducts = `[
		{"slug":"appfolio","title":"AppFolio","tagline":"Gestión de inmuebles","categories":["Property Management"],"rating":4.6,"is_featured":true,
		 "pricing":{"model":"Subscription","starting_price":"$1.40/unit","free_trial":true}},
		{"slug":"buildium","title":"Buildium","categories":["Property Management"],"rating":4.2},
		{"slug":"costar","title":"CoStar","categories":["Market Data"]},
		{"slug":"costar","title":"CoStar duplicado"}
	]`
	testCategories = `{
		"property-management":{"name":"Property Management","product_count":2,"products":["appfolio","buildium"]},
		"market-data":{"name":"Market Data","product_count":1,"products":["costar"]}
	}`
)

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte(testProducts), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "categories.json"), []byte(testCategories), 0o644))
	return dir
}

// run ejecuta la CLI con los argumentos dados sobre el directorio de datos.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CATALOG_SOURCE", "file")
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--quiet", "--data-dir", dir}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestSearch_TablaOrdenadaPorRating(t *testing.T) {
	dir := writeFixture(t)

	out, err := run(t, dir, "search", "--sort", "rating")
	require.NoError(t, err)
	assert.Contains(t, out, "SLUG")
	assert.Less(t, bytes.Index([]byte(out), []byte("appfolio")), bytes.Index([]byte(out), []byte("buildium")))
	assert.Contains(t, out, "3 de 3 productos")
}

func TestSearch_JSONConFiltros(t *testing.T) {
	dir := writeFixture(t)

	out, err := run(t, dir, "--json", "search", "gestión", "--free-trial")
	require.NoError(t, err)
	var res dto.ProductListResponse
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Items, 1)
	assert.Equal(t, "appfolio", res.Items[0].Slug)
}

func TestSearch_OrdenInvalido(t *testing.T) {
	_, err := run(t, writeFixture(t), "search", "--sort", "popularity")
	require.Error(t, err)
}

func TestShow(t *testing.T) {
	dir := writeFixture(t)

	out, err := run(t, dir, "show", "appfolio")
	require.NoError(t, err)
	assert.Contains(t, out, "AppFolio (appfolio)")
	assert.Contains(t, out, "Más en Property Management: buildium")

	_, err = run(t, dir, "show", "no-existe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no encontrado")
}

func TestBadges(t *testing.T) {
	out, err := run(t, writeFixture(t), "badges")
	require.NoError(t, err)
	assert.Contains(t, out, "appfolio")
}

func TestValidate(t *testing.T) {
	dir := writeFixture(t)

	out, err := run(t, dir, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "duplicate_slug costar")

	_, err = run(t, dir, "validate", "--strict")
	require.Error(t, err)
}

func TestComparePDF(t *testing.T) {
	dir := writeFixture(t)
	target := filepath.Join(t.TempDir(), "cmp.pdf")

	out, err := run(t, dir, "compare-pdf", "appfolio", "costar", "-o", target)
	require.NoError(t, err)
	assert.Contains(t, out, target)
	body, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	_, err = run(t, dir, "compare-pdf", "nada", "-o", target)
	require.Error(t, err)
}

func TestImport_RequierePostgres(t *testing.T) {
	_, err := run(t, writeFixture(t), "import")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CATALOG_SOURCE=postgres")
}

func TestToken(t *testing.T) {
	t.Setenv("CATALOG_ADMIN_SECRET", "s3cret")
	out, err := run(t, writeFixture(t), "token", "--subject", "ci")
	require.NoError(t, err)

	sub, scope, err := jwt.Parse("s3cret", strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "ci", sub)
	assert.Equal(t, jwt.ScopeReload, scope)
}

func TestToken_SinSecret(t *testing.T) {
	t.Setenv("CATALOG_ADMIN_SECRET", "")
	_, err := run(t, writeFixture(t), "token")
	require.Error(t, err)
}
