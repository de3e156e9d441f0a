package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veloura/storefront/internal/catalog"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadStore(t *testing.T) {
	t.Run("should load a valid catalog in file order", func(t *testing.T) {
		path := writeCatalogFile(t, `[
			{"id": 2, "name": "Harbor Denim Jacket", "price": 4299, "category": "jackets"},
			{"id": 1, "name": "Aurora Puffer Jacket", "price": 3299, "category": "jackets"}
		]`)

		store, err := catalog.LoadStore(path)

		require.NoError(t, err)
		require.Equal(t, 2, store.Len())
		assert.Equal(t, 2, store.All()[0].ID)
		assert.Equal(t, 1, store.All()[1].ID)
	})

	t.Run("should fail on missing file", func(t *testing.T) {
		_, err := catalog.LoadStore(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("should fail on empty catalog", func(t *testing.T) {
		path := writeCatalogFile(t, `[]`)

		_, err := catalog.LoadStore(path)

		assert.True(t, errors.Is(err, catalog.ErrEmptyCatalog))
	})

	t.Run("should fail on duplicate ids", func(t *testing.T) {
		path := writeCatalogFile(t, `[
			{"id": 1, "name": "A", "price": 100},
			{"id": 1, "name": "B", "price": 200}
		]`)

		_, err := catalog.LoadStore(path)

		assert.ErrorContains(t, err, "duplicate id")
	})

	t.Run("should fail on non-positive price", func(t *testing.T) {
		path := writeCatalogFile(t, `[{"id": 1, "name": "A", "price": 0}]`)

		_, err := catalog.LoadStore(path)

		assert.ErrorContains(t, err, "price must be positive")
	})

	t.Run("should fail on blank name", func(t *testing.T) {
		path := writeCatalogFile(t, `[{"id": 1, "name": "  ", "price": 100}]`)

		_, err := catalog.LoadStore(path)

		assert.ErrorContains(t, err, "name must not be empty")
	})
}

func TestStoreFindByID(t *testing.T) {
	store := catalog.NewStore(testCatalog())

	t.Run("should find an existing product", func(t *testing.T) {
		product, err := store.FindByID(2)

		require.NoError(t, err)
		assert.Equal(t, "Harbor Denim Jacket", product.Name)
		assert.Equal(t, 4299, product.Price)
	})

	t.Run("should fail with not found for unknown id", func(t *testing.T) {
		_, err := store.FindByID(999)

		assert.True(t, errors.Is(err, catalog.ErrProductNotFound))
	})
}
