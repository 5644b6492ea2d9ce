package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/bikeshare/internal/config"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_BuiltinTable(t *testing.T) {
	t.Parallel()

	// --- Act ---
	model, err := NewLoader("data").Load(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	expected := &config.Model{Cities: []*config.City{
		{Name: "chicago", File: filepath.Join("data", "chicago.csv"), TimeLayout: config.DefaultTimeLayout},
		{Name: "new york city", File: filepath.Join("data", "new_york_city.csv"), TimeLayout: config.DefaultTimeLayout},
		{Name: "washington", File: filepath.Join("data", "washington.csv"), TimeLayout: config.DefaultTimeLayout},
	}}
	if diff := cmp.Diff(expected, model); diff != "" {
		t.Errorf("built-in table mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_DefaultDataDir(t *testing.T) {
	t.Parallel()

	model, err := NewLoader("").Load(context.Background())
	require.NoError(t, err)
	c, ok := model.Lookup("washington")
	require.True(t, ok)
	require.Equal(t, "washington.csv", c.File)
}

func TestLoader_UserFileReplacesBuiltin(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	path := writeFile(t, dir, "cities.hcl", `
city "Boston" {
  file        = format("%s/%s.csv", data_dir, lower("BOSTON"))
  time_layout = "01/02/2006 15:04"
}
`)

	// --- Act ---
	model, err := NewLoader("/srv/trips").Load(context.Background(), path)

	// --- Assert ---
	require.NoError(t, err)
	expected := &config.Model{Cities: []*config.City{
		{Name: "boston", File: "/srv/trips/boston.csv", TimeLayout: "01/02/2006 15:04"},
	}}
	if diff := cmp.Diff(expected, model); diff != "" {
		t.Errorf("city table mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_WalksDirectory(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeFile(t, dir, "a.hcl", `city "chicago" { file = "c.csv" }`)
	writeFile(t, dir, "nested/b.hcl", `city "washington" { file = "w.csv" }`)
	writeFile(t, dir, "notes.txt", `not hcl`)

	// --- Act ---
	model, err := NewLoader(".").Load(context.Background(), dir)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{"chicago", "washington"}, model.CityNames())
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		files     map[string]string
		path      string
		expectErr string
	}{
		{
			name:      "syntax error",
			files:     map[string]string{"bad.hcl": `city "chicago" {`},
			path:      "bad.hcl",
			expectErr: "failed to parse HCL file",
		},
		{
			name: "unknown attribute",
			files: map[string]string{"bad.hcl": `
city "chicago" {
  file  = "c.csv"
  color = "red"
}
`},
			path:      "bad.hcl",
			expectErr: "failed to decode HCL file",
		},
		{
			name:      "missing file attribute",
			files:     map[string]string{"bad.hcl": `city "chicago" {}`},
			path:      "bad.hcl",
			expectErr: "failed to decode HCL file",
		},
		{
			name: "duplicate city",
			files: map[string]string{"dup.hcl": `
city "chicago" { file = "a.csv" }
city "Chicago" { file = "b.csv" }
`},
			path:      "dup.hcl",
			expectErr: `city "chicago" is defined more than once`,
		},
		{
			name:      "missing path",
			path:      "nope.hcl",
			expectErr: "error accessing config path",
		},
		{
			name:      "wrong extension",
			files:     map[string]string{"cities.json": `{}`},
			path:      "cities.json",
			expectErr: "must have the .hcl extension",
		},
		{
			name:      "no cities",
			files:     map[string]string{"empty.hcl": ``},
			path:      "empty.hcl",
			expectErr: "city table is empty",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			for name, content := range tc.files {
				writeFile(t, dir, name, content)
			}

			_, err := NewLoader(".").Load(context.Background(), filepath.Join(dir, tc.path))

			require.Error(t, err)
			require.Contains(t, err.Error(), tc.expectErr)
		})
	}
}
