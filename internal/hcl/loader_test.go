package hcl

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
	path := filepath.Join(t.TempDir(), "fragsplice.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Setenv("FRAGSPLICE_TEST_TEMPLATES", "/opt/templates")

	path := writeConfig(t, `
targets        = ["../clay.h", "src/${lower("LAYOUT")}.h"]
template_roots = ["${env.FRAGSPLICE_TEST_TEMPLATES}", "generator"]
suffix         = ".template.c"
marker         = "// __GENERATED__ template"
duplicates     = "first"

region {
  begin = "// region"
  end   = "// endregion"
}
`)
	dir := filepath.Dir(path)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(filepath.Dir(dir), "clay.h"),
		filepath.Join(dir, "src", "layout.h"),
	}, model.Targets)
	assert.Equal(t, []string{
		filepath.Clean("/opt/templates"),
		filepath.Join(dir, "generator"),
	}, model.TemplateRoots)
	assert.Equal(t, ".template.c", model.Suffix)
	assert.Equal(t, "// __GENERATED__ template", model.Marker)
	assert.Equal(t, "first", model.Duplicates)
	assert.Equal(t, "// region", model.RegionBegin)
	assert.Equal(t, "// endregion", model.RegionEnd)
}

func TestLoader_LoadMinimal(t *testing.T) {
	path := writeConfig(t, `targets = ["a.c"]`)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(filepath.Dir(path), "a.c")}, model.Targets)
	assert.Nil(t, model.TemplateRoots)
	assert.Empty(t, model.Suffix)
	assert.Empty(t, model.RegionBegin)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "syntax error", content: `targets = [`, wantErr: "failed to parse HCL file"},
		{name: "unknown attribute", content: `workers = 4`, wantErr: "failed to decode HCL file"},
		{name: "unknown env var", content: `targets = [env.FRAGSPLICE_TEST_NOPE_1234]`, wantErr: "failed to decode HCL file"},
		{name: "duplicate region block", content: "region {}\nregion {}", wantErr: "failed to decode HCL file"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().Load(context.Background(), writeConfig(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
}

func TestNewEvalContext_SkipsMalformedEntries(t *testing.T) {
	ctx := newEvalContext([]string{"A=1", "B=x=y", "=hidden", "NOEQUALS"})

	env := ctx.Variables["env"]
	assert.Equal(t, "1", env.GetAttr("A").AsString())
	assert.Equal(t, "x=y", env.GetAttr("B").AsString())
	assert.False(t, env.Type().HasAttribute("NOEQUALS"))
	assert.Len(t, env.Type().AttributeTypes(), 2)
}
