package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdslim/pkg/config"
	"github.com/yaklabco/mdslim/pkg/runner"
	"github.com/yaklabco/mdslim/pkg/slim"
)

func newRunner(cfg *config.Config) *runner.Runner {
	return runner.New(slim.NewPipeline(cfg))
}

func TestRun_MirrorsTree(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	dest := t.TempDir()
	writeFile(t, filepath.Join(src, "readme.md"), "# Readme\n\n**bold** text\n")
	writeFile(t, filepath.Join(src, "docs", "guide.md"), "# Guide\n\nSee [here](https://x.io).\n")

	cfg := config.New()
	cfg.Source = src
	cfg.Dest = dest
	opts := runner.Options{Config: cfg, WorkingDir: src}

	result, err := newRunner(cfg).Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 2, result.Stats.FilesProcessed)
	assert.Equal(t, 2, result.Stats.FilesWritten)
	assert.Zero(t, result.Stats.FilesErrored)
	assert.Greater(t, result.Stats.Reduction(), 0.0)

	got, err := os.ReadFile(filepath.Join(dest, "docs", "guide.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Guide\n\nSee here.", string(got))

	got, err = os.ReadFile(filepath.Join(dest, "readme.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Readme\n\nbold text", string(got))
}

func TestRun_ContinuesPastFileErrors(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	dest := t.TempDir()
	writeFile(t, filepath.Join(src, "good.md"), "# Good\n")
	// Not valid UTF-8: the read fails, the batch must not.
	require.NoError(t, os.WriteFile(filepath.Join(src, "bad.md"), []byte{0xff, 0xfe, 0x00}, 0o644))

	cfg := config.New()
	cfg.Source = src
	cfg.Dest = dest
	opts := runner.Options{Config: cfg, WorkingDir: src}

	result, err := newRunner(cfg).Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesErrored)

	require.Len(t, result.Files, 2)
	assert.ErrorIs(t, result.Files[0].Error, slim.ErrRead)
	assert.NoError(t, result.Files[1].Error)

	_, err = os.Stat(filepath.Join(dest, "good.md"))
	assert.NoError(t, err, "good file should still be written")
}

func TestRun_FollowedSymlinkProcessedOnce(t *testing.T) {
	t.Parallel()

	src, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	writeFile(t, filepath.Join(src, "docs", "guide.md"), "# Guide\n")
	require.NoError(t, os.Symlink(filepath.Join(src, "docs"), filepath.Join(src, "alias")))

	cfg := config.New()
	cfg.Source = src
	cfg.Dest = t.TempDir()
	cfg.FollowSymlinks = true
	opts := runner.Options{Config: cfg, WorkingDir: src}

	result, err := newRunner(cfg).Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesDiscovered)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
	assert.Len(t, result.Files, 1)
}

func TestRun_DeterministicOrder(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	for _, name := range []string{"c.md", "a.md", "b.md"} {
		writeFile(t, filepath.Join(src, name), "# "+name+"\n")
	}

	cfg := config.New()
	cfg.Source = src
	cfg.Dest = t.TempDir()
	cfg.Jobs = 3
	opts := runner.Options{Config: cfg, WorkingDir: src}

	result, err := newRunner(cfg).Run(context.Background(), opts)
	require.NoError(t, err)

	var paths []string
	for _, f := range result.Files {
		paths = append(paths, filepath.Base(f.Path))
	}
	assert.Equal(t, []string{"a.md", "b.md", "c.md"}, paths)
}

func TestRun_EmptySource(t *testing.T) {
	t.Parallel()

	cfg := config.New()
	cfg.Source = t.TempDir()
	cfg.Dest = t.TempDir()
	opts := runner.Options{Config: cfg, WorkingDir: cfg.Source}

	result, err := newRunner(cfg).Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasFailures())
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	writeFile(t, filepath.Join(src, "doc.md"), "# d\n")

	cfg := config.New()
	cfg.Source = src
	cfg.Dest = t.TempDir()
	opts := runner.Options{Config: cfg, WorkingDir: src}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRunner(cfg).Run(ctx, opts)
	assert.Error(t, err)
}

func TestStats_Reduction(t *testing.T) {
	t.Parallel()

	s := runner.Stats{BytesIn: 1000, BytesOut: 600}
	assert.InDelta(t, 0.4, s.Reduction(), 0.001)
	assert.Zero(t, runner.Stats{}.Reduction())
}
