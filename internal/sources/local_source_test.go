package sources

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSource_EnumeratesFilesInOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.log"), []byte("second"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), []byte("first"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "c.log"), []byte("third"), 0644))

	source, err := NewLocalSource(dir)
	require.NoError(t, err)

	var keys, texts []string
	err = source.EachBlob(context.Background(), func(_ context.Context, blob *Blob) error {
		keys = append(keys, blob.Key)
		texts = append(texts, blob.Text)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.log", "b.log", filepath.Join("nested", "c.log")}, keys)
	assert.Equal(t, []string{"first", "second", "third"}, texts)
}

func TestNewLocalSource_MissingDirIsUnavailable(t *testing.T) {
	t.Parallel()

	_, err := NewLocalSource(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestNewLocalSource_EmptyDirSetting(t *testing.T) {
	t.Parallel()

	_, err := NewLocalSource("")
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestNewLocalSource_FileIsNotADirectory(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "plain.log")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := NewLocalSource(file)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestLocalSource_CallbackErrorStopsEnumeration(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.log"), []byte("y"), 0644))

	source, err := NewLocalSource(dir)
	require.NoError(t, err)

	calls := 0
	err = source.EachBlob(context.Background(), func(_ context.Context, _ *Blob) error {
		calls++
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, calls)
}
