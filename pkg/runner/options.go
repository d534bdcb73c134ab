// Package runner orchestrates a slimming run: it discovers Markdown
// files under the source root and processes them concurrently, writing
// each result under the mirrored destination path.
package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/mdslim/pkg/config"
)

// Options controls a run.
type Options struct {
	// Config is the resolved configuration, including the source and
	// destination roots.
	Config *config.Config

	// WorkingDir is the base directory used to resolve relative
	// source and destination roots. Empty means the process working
	// directory.
	WorkingDir string
}

// resolveRoots returns the absolute source and destination roots.
func (o Options) resolveRoots() (src, dest string, err error) {
	workDir := o.WorkingDir
	if workDir == "" {
		workDir, err = os.Getwd()
		if err != nil {
			return "", "", fmt.Errorf("get working directory: %w", err)
		}
	}

	src = o.Config.Source
	if !filepath.IsAbs(src) {
		src = filepath.Join(workDir, src)
	}
	dest = o.Config.Dest
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(workDir, dest)
	}

	return filepath.Clean(src), filepath.Clean(dest), nil
}

// DestPath mirrors a source file's relative path beneath the
// destination root.
func DestPath(srcPath, srcRoot, destRoot string) (string, error) {
	rel, err := filepath.Rel(srcRoot, srcPath)
	if err != nil {
		return "", fmt.Errorf("relativize %s: %w", srcPath, err)
	}
	return filepath.Join(destRoot, rel), nil
}
