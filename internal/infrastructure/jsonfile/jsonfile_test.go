package jsonfile_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jhoicas/cre-directory/internal/infrastructure/jsonfile"
)

func writeData(t *testing.T, dir, products, categories string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, jsonfile.ProductsFile), []byte(products), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, jsonfile.CategoriesFile), []byte(categories), 0o644))
}

// ──────────────────────────────────────────────────────────────────────────────
// Source
// ──────────────────────────────────────────────────────────────────────────────

func TestSource_Load(t *testing.T) {
	dir := t.TempDir()
	writeData(t, dir,
		`[{"slug":"a","title":"A","rating":"oops"},{"slug":"b","title":"B"}, 42]`,
		`{"crm":{"name":"CRM","product_count":1,"products":["a"]}}`)

	src := jsonfile.NewSource(dir)
	products, categories, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "a", products[0].Slug)
	assert.Nil(t, products[0].Rating)
	assert.Empty(t, products[2].Slug)
	require.Contains(t, categories, "crm")
	assert.Equal(t, "CRM", categories["crm"].Name)
	assert.Equal(t, "file:"+dir, src.Describe())
}

func TestSource_LoadRawConservaDocumentos(t *testing.T) {
	dir := t.TempDir()
	writeData(t, dir, `[{"slug":"a","extra":{"x":1}},{"slug":"b"}]`, `{"crm":{"name":"CRM"}}`)

	products, categories, err := jsonfile.NewSource(dir).LoadRaw(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.JSONEq(t, `{"slug":"a","extra":{"x":1}}`, string(products[0]))
	assert.JSONEq(t, `{"name":"CRM"}`, string(categories["crm"]))
}

func TestSource_JSONMalFormadoEsError(t *testing.T) {
	dir := t.TempDir()
	writeData(t, dir, `[{"slug":"a"`, `{}`)
	_, _, err := jsonfile.NewSource(dir).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), jsonfile.ProductsFile)
}

func TestSource_ArchivoFaltante(t *testing.T) {
	_, _, err := jsonfile.NewSource(t.TempDir()).Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSource_ContextoCancelado(t *testing.T) {
	dir := t.TempDir()
	writeData(t, dir, `[]`, `{}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := jsonfile.NewSource(dir).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// ──────────────────────────────────────────────────────────────────────────────
// Watcher
// ──────────────────────────────────────────────────────────────────────────────

type countingReloader struct{ n atomic.Int32 }

func (r *countingReloader) Reload(context.Context) error {
	r.n.Add(1)
	return nil
}

func TestWatcher_RecargaAnteCambios(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	writeData(t, dir, `[]`, `{}`)
	target := &countingReloader{}

	w, err := jsonfile.NewWatcher(dir, target, 20*time.Millisecond, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	for i := 0; i < 3; i++ {
		writeData(t, dir, `[{"slug":"a"}]`, `{}`)
	}
	require.Eventually(t, func() bool { return target.n.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notas.txt"), []byte("x"), 0o644))
	time.Sleep(100 * time.Millisecond)
	before := target.n.Load()
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, before, target.n.Load(), "archivos ajenos no disparan recargas")

	w.Stop()
	w.Stop()
	assert.Equal(t, int(target.n.Load()), w.Reloads())
}

func TestWatcher_CancelacionDeContexto(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	w, err := jsonfile.NewWatcher(dir, &countingReloader{}, 0, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()
	w.Stop()
}

func TestWatcher_DirectorioInexistente(t *testing.T) {
	w, err := jsonfile.NewWatcher(filepath.Join(t.TempDir(), "nada"), &countingReloader{}, 0, nil)
	require.NoError(t, err)
	assert.Error(t, w.Start(context.Background()))
	w.Stop()
}
