package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCatalog_RejectsDuplicates(t *testing.T) {
	_, err := NewCatalog([]Item{
		{ID: "a", Category: CategoryLaugh},
		{ID: "a", Category: CategoryEducate},
	})
	require.Error(t, err)
}

func TestNewCatalog_RejectsMissingID(t *testing.T) {
	_, err := NewCatalog([]Item{{Category: CategoryLaugh}})
	require.Error(t, err)
}

func TestLoadCatalog_Seed(t *testing.T) {
	catalog, err := LoadCatalog("")
	require.NoError(t, err)
	require.Equal(t, 9, catalog.Len())

	item, ok := catalog.Get("laugh_01")
	require.True(t, ok)
	require.Equal(t, CategoryLaugh, item.Category)
	require.Equal(t, TypeImage, item.Type)

	_, ok = catalog.Get("nope")
	require.False(t, ok)
}

func TestLoadCatalog_YAMLFile(t *testing.T) {
	raw := `items:
  - id: calm_01
    category: Educate
    type: text
    text: "Box breathing: 4 in, 4 hold, 4 out."
    score: 2
  - id: fun_01
    category: Laugh
    type: video
    url: https://example.com/cat.mp4
    text: "Cat parkour"
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Equal(t, 2, catalog.Len())

	item, ok := catalog.Get("calm_01")
	require.True(t, ok)
	require.Equal(t, 2, item.Score)
	require.Equal(t, CategoryEducate, item.Category)
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadCatalog_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items: []\n"), 0644))

	_, err := LoadCatalog(path)
	require.Error(t, err)
}
