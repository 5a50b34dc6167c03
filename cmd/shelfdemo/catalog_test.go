package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/shelf/pkg/shelf"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeFile(t, "items.yaml", `
groups:
  - name: Films
    items:
      - label: The Matrix
        sort: Matrix
      - label: Alien
        icon: /icons/alien.png
  - name: Empty
`)

	cat, err := loadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Films", "Empty"}, cat.names())

	items := cat.Groups[0].items()
	require.Len(t, items, 2)
	assert.Equal(t, "The Matrix", items[0].Label())
	assert.Equal(t, "Matrix", items[0].SortLabel())
	assert.Equal(t, "/icons/alien.png", items[1].(*shelf.MenuItem).Icon())
	assert.Empty(t, cat.Groups[1].items())
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no groups", "groups: []\n"},
		{"bad yaml", "groups: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadCatalog(writeFile(t, "items.yaml", tt.content))
			assert.Error(t, err)
		})
	}

	_, err := loadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadCatalog_Default(t *testing.T) {
	cat, err := loadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alphabet", "Planets", "Numbered"}, cat.names())
	assert.Len(t, cat.Groups[0].Items, 26)
	assert.Len(t, cat.Groups[2].Items, 250)
	assert.Equal(t, "Item 001", cat.Groups[2].Items[0].Label)
}
