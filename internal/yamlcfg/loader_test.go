package yamlcfg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fragsplice.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Setenv("FRAGSPLICE_TEST_SRC", "src")

	path := writeConfig(t, `
targets:
  - ../clay.h
  - ${FRAGSPLICE_TEST_SRC}/layout.h
template_roots: [generator]
suffix: .template.c
marker: "// __GENERATED__ template"
duplicates: error
region:
  begin: "#pragma region generated"
  end: "#pragma endregion"
`)
	dir := filepath.Dir(path)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(filepath.Dir(dir), "clay.h"),
		filepath.Join(dir, "src", "layout.h"),
	}, model.Targets)
	assert.Equal(t, []string{filepath.Join(dir, "generator")}, model.TemplateRoots)
	assert.Equal(t, ".template.c", model.Suffix)
	assert.Equal(t, "// __GENERATED__ template", model.Marker)
	assert.Equal(t, "error", model.Duplicates)
	assert.Equal(t, "#pragma region generated", model.RegionBegin)
	assert.Equal(t, "#pragma endregion", model.RegionEnd)
}

func TestLoader_EmptyFile(t *testing.T) {
	t.Parallel()

	model, err := NewLoader().Load(context.Background(), writeConfig(t, ""))
	require.NoError(t, err)
	assert.Nil(t, model.Targets)
	assert.Empty(t, model.Suffix)
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), writeConfig(t, "workers: 4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode YAML file")

	_, err = NewLoader().Load(context.Background(), writeConfig(t, "targets: {a: b}\n"))
	require.Error(t, err)

	_, err = NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
