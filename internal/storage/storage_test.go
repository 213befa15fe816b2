package storage

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoStore_Unit(t *testing.T) {
	memFs := afero.NewMemMapFs()
	store := NewAferoStore(memFs)
	ctx := context.Background()

	filePath := "qrcodes/qr_1_STD00000001.png"
	fileContent := "\x89PNG fake"

	t.Run("Save", func(t *testing.T) {
		n, err := store.Save(ctx, filePath, bytes.NewReader([]byte(fileContent)))
		require.NoError(t, err)
		assert.Equal(t, int64(len(fileContent)), n)

		readBytes, err := afero.ReadFile(memFs, filePath)
		require.NoError(t, err)
		assert.Equal(t, fileContent, string(readBytes))
	})

	t.Run("Exists", func(t *testing.T) {
		ok, err := store.Exists(ctx, filePath)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Exists(ctx, "qrcodes/nope.png")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Open", func(t *testing.T) {
		file, err := store.Open(ctx, filePath)
		require.NoError(t, err)
		defer file.Close()

		readBytes, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, fileContent, string(readBytes))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, filePath))
		exists, err := afero.Exists(memFs, filePath)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Open non-existent file", func(t *testing.T) {
		_, err := store.Open(ctx, "path/to/nothing.txt")
		assert.Error(t, err)
	})
}
