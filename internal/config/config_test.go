package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/larynjahor/brackets/pkg"
	"github.com/larynjahor/brackets/pkg/bracket"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir string, content string) string {
	t.Helper()

	p := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))

	return p
}

func TestLoad(t *testing.T) {
	p := writeConfig(t, t.TempDir(), `
pairs:
  - open: "("
    close: ")"
  - open: "<"
    close: ">"
extensions: [".go", ".rs"]
workers: 3
debug: true
`)

	c, err := Load(p)
	require.NoError(t, err)

	require.Equal(t, Config{
		Pairs:      []Pair{{Open: "(", Close: ")"}, {Open: "<", Close: ">"}},
		Extensions: []string{".go", ".rs"},
		Workers:    3,
		Format:     FormatText,
		Debug:      true,
	}, c)

	pairing, err := c.Pairing()
	require.NoError(t, err)
	require.Equal(t, []bracket.Pair{{Open: '(', Close: ')'}, {Open: '<', Close: '>'}}, pairing.Pairs())
	require.Equal(t, bracket.ClassOther, pairing.Classify('['))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "syntax",
			content: "pairs: [",
		},
		{
			name:    "format",
			content: "format: xml",
		},
		{
			name:    "workers",
			content: "workers: -1",
		},
		{
			name:    "multi rune pair",
			content: "pairs: [{open: \"<<\", close: \">>\"}]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), tt.content))
			require.ErrorIs(t, err, pkg.ErrInvalidConfig)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestPairing_Default(t *testing.T) {
	c := Default()

	pairing, err := c.Pairing()
	require.NoError(t, err)
	require.Same(t, bracket.DefaultPairing(), pairing)
}

func TestPairing_Duplicate(t *testing.T) {
	c := Config{Pairs: []Pair{{Open: "(", Close: ")"}, {Open: "(", Close: "]"}}}

	_, err := c.Pairing()
	require.ErrorIs(t, err, pkg.ErrInvalidPairing)
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	_, ok := Find(nested)
	require.False(t, ok)

	want := writeConfig(t, root, "workers: 1")

	got, ok := Find(nested)
	require.True(t, ok)
	require.Equal(t, want, got)
}
