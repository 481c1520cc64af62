package bootstrap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cre-directory/internal/bootstrap"
	"github.com/jhoicas/cre-directory/pkg/config"
)

func TestOpenSource_Archivo(t *testing.T) {
	dir := t.TempDir()
	src, closeFn, err := bootstrap.OpenSource(context.Background(), config.CatalogConfig{Source: "file", DataDir: dir}, config.DBConfig{})
	require.NoError(t, err)
	defer closeFn()
	assert.Equal(t, "file:"+dir, src.Describe())
}
