package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover finds Markdown files under the source root. It returns a
// deterministically sorted list of absolute file paths. The
// destination root is never descended into, so a destination nested
// inside the source does not get re-slimmed on the next run.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	srcRoot, destRoot, err := opts.resolveRoots()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(srcRoot)
	if err != nil {
		return nil, fmt.Errorf("stat source root %s: %w", opts.Config.Source, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source root %s is not a directory", opts.Config.Source)
	}

	files, err := walkSource(ctx, srcRoot, srcRoot, destRoot, opts)
	if err != nil {
		return nil, err
	}

	sort.Strings(files)

	// A followed directory symlink whose target lies inside the source
	// tree yields its files a second time; only the first occurrence
	// of each path is kept.
	seen := make(map[string]struct{}, len(files))
	deduped := files[:0]
	for _, path := range files {
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		deduped = append(deduped, path)
	}

	return deduped, nil
}

func walkSource(ctx context.Context, root, srcRoot, destRoot string, opts Options) ([]string, error) {
	extensions := opts.Config.EffectiveExtensions()
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			// Unreadable subtrees are skipped, not fatal.
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath, relErr := filepath.Rel(srcRoot, path)
		if relErr != nil {
			relPath = path
		}

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if path == destRoot {
				return filepath.SkipDir
			}
			if matchesAny(relPath, opts.Config.Ignore) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return walkSymlink(ctx, path, srcRoot, destRoot, opts, &files)
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if matchesFile(path, relPath, extensions, opts) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return files, nil
}

// walkSymlink resolves a symlink entry, descending into directory
// targets only when FollowSymlinks is set. Broken links are skipped.
func walkSymlink(ctx context.Context, path, srcRoot, destRoot string, opts Options, files *[]string) error {
	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // Broken symlink, skip silently.
	}
	info, err := os.Stat(realPath)
	if err != nil {
		return nil //nolint:nilerr // Inaccessible target, skip silently.
	}

	if info.IsDir() {
		if !opts.Config.FollowSymlinks {
			return nil
		}
		// Walk the target, not the link, to avoid recursing into
		// the link itself forever.
		sub, err := walkSource(ctx, realPath, srcRoot, destRoot, opts)
		if err != nil {
			return err
		}
		*files = append(*files, sub...)
		return nil
	}

	relPath, relErr := filepath.Rel(srcRoot, path)
	if relErr != nil {
		relPath = path
	}
	if matchesFile(path, relPath, opts.Config.EffectiveExtensions(), opts) {
		*files = append(*files, path)
	}
	return nil
}

func matchesFile(path, relPath string, extensions []string, opts Options) bool {
	ext := strings.ToLower(filepath.Ext(path))
	found := false
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	return !matchesAny(relPath, opts.Config.Ignore)
}

func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches a slash-normalized relative path against a glob
// pattern, with support for the common "**" forms ("vendor/**",
// "**/drafts", bare "**").
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchDoubleStar(path, pattern)
	}

	if ok, err := filepath.Match(pattern, path); err == nil && ok {
		return true
	}
	ok, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && ok
}

func matchDoubleStar(path, pattern string) bool {
	before, after, _ := strings.Cut(pattern, "**")
	before = strings.TrimSuffix(before, "/")
	after = strings.TrimPrefix(after, "/")

	if before == "" && after == "" {
		return true
	}

	// "prefix/**": anything at or under prefix.
	if after == "" {
		return path == before || strings.HasPrefix(path, before+"/")
	}

	// "**/suffix": a matching component or trailing subpath anywhere.
	if before == "" {
		if strings.HasSuffix(path, after) || strings.Contains(path, after) {
			return true
		}
		for _, part := range strings.Split(path, "/") {
			if ok, err := filepath.Match(after, part); err == nil && ok {
				return true
			}
		}
		return false
	}

	// "prefix/**/suffix".
	if !strings.HasPrefix(path, before) {
		return false
	}
	if strings.HasSuffix(path, after) {
		return true
	}
	ok, err := filepath.Match(after, filepath.Base(path))
	return err == nil && ok
}
