package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdslim/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# Hello"), 0o644))

	content, info, err := fsutil.ReadFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []byte("# Hello"), content)
	assert.Equal(t, path, info.Path)
	assert.Equal(t, int64(7), info.Size)
}

func TestReadFile_NotFound(t *testing.T) {
	t.Parallel()

	_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.md"))
	assert.ErrorIs(t, err, fsutil.ErrNotFound)
}

func TestReadFile_Directory(t *testing.T) {
	t.Parallel()

	_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, fsutil.ErrIsDirectory)
}

func TestReadFile_InvalidEncoding(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "binary.md")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x80}, 0o644))

	_, _, err := fsutil.ReadFile(context.Background(), path)
	assert.ErrorIs(t, err, fsutil.ErrInvalidEncoding)
}

func TestReadFile_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := fsutil.ReadFile(ctx, "whatever.md")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.md")

	err := fsutil.WriteAtomic(context.Background(), path, []byte("slimmed"), 0)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "slimmed", string(got))

	// No leftover temp files.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteAtomic_PreservesMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.md")

	require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0o600))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm())
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.md")
	ctx := context.Background()

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("v1"), 0)
	require.NoError(t, err)
	assert.True(t, written, "first write should create the file")

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("v1"), 0)
	require.NoError(t, err)
	assert.False(t, written, "identical content should be skipped")

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("v2"), 0)
	require.NoError(t, err)
	assert.True(t, written, "changed content should be written")
}

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, fsutil.EnsureDir(dir))

	stat, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())

	// Idempotent.
	assert.NoError(t, fsutil.EnsureDir(dir))
}
