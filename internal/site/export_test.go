package site_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panampa98/portfolio/internal/portfolio"
	"github.com/panampa98/portfolio/internal/site"
	"github.com/panampa98/portfolio/ui"
)

type memTarget struct {
	mu    sync.Mutex
	files map[string][]byte
}

func (m *memTarget) Write(_ context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.files == nil {
		m.files = map[string][]byte{}
	}
	m.files[name] = data
	return nil
}

func TestExport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	res, err := uiSite(t).Export(context.Background(), site.DirTarget(dir), site.ExportOptions{
		Assets:      ui.Static(),
		Concurrency: 2,
	})
	require.NoError(t, err)
	assert.Empty(t, res.Fallbacks)

	for _, name := range []string{
		"index.html",
		"en/index.html",
		"es/index.html",
		"es/projects/etl-pipeline/index.html",
		"en/assets/css/site.css",
		"es/assets/i18n/es.json",
	} {
		assert.Contains(t, res.Files, name)
		_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name)))
		assert.NoError(t, err, name)
	}

	detail, err := os.ReadFile(filepath.Join(dir, "es", "projects", "etl-pipeline", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(detail), `<html lang="es">`)
	assert.Contains(t, string(detail), "Pipeline ETL operativo")
	assert.Contains(t, string(detail), `href="../../../en/projects/etl-pipeline/index.html"`)

	home, err := os.ReadFile(filepath.Join(dir, "en", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(home), `href="../es/index.html"`)

	root, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(root), `content="0; url=en/index.html"`)
	assert.Contains(t, string(root), `<link rel="canonical" href="en/index.html">`)
}

func TestExportFallback(t *testing.T) {
	t.Parallel()

	target := &memTarget{}
	res, err := newSite(t, onlyEnglish(t)).Export(context.Background(), target, site.ExportOptions{
		Languages: []portfolio.Code{portfolio.Spanish},
	})
	require.NoError(t, err)
	assert.Contains(t, res.Fallbacks, "es/index.html")
	assert.Contains(t, string(target.files["es/index.html"]), `<html lang="en">`)
	assert.NotContains(t, target.files, "en/index.html")
}

func TestExportFailure(t *testing.T) {
	t.Parallel()

	_, err := newSite(t, portfolio.NewFSSource(fstest.MapFS{})).Export(context.Background(), &memTarget{}, site.ExportOptions{})
	require.ErrorIs(t, err, portfolio.ErrLoad)
}
