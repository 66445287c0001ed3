package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yaklabco/gotexlint/pkg/langdetect"
)

// Discover finds LaTeX files matching opts.
// It returns a deterministically sorted, de-duplicated list of absolute paths.
//
// Directories are walked for files with a configured extension. A file named
// explicitly is accepted by extension, or by content when DetectContent is set.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	walker := &walker{
		ctx:     ctx,
		workDir: workDir,
		opts:    opts,
		exts:    opts.effectiveExtensions(),
		seen:    make(map[string]struct{}),
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(absPath) {
			absPath = filepath.Join(workDir, absPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			if err := walker.walk(absPath); err != nil {
				return nil, err
			}
			continue
		}

		if walker.acceptExplicit(absPath) {
			walker.add(absPath)
		}
	}

	slices.Sort(walker.files)
	return walker.files, nil
}

// walker accumulates discovered files for one Discover call.
type walker struct {
	ctx     context.Context //nolint:containedctx // Scoped to a single Discover call.
	workDir string
	opts    Options
	exts    []string
	seen    map[string]struct{}
	files   []string
}

func (w *walker) add(path string) {
	if _, ok := w.seen[path]; ok {
		return
	}
	w.seen[path] = struct{}{}
	w.files = append(w.files, path)
}

func (w *walker) rel(path string) string {
	relPath, err := filepath.Rel(w.workDir, path)
	if err != nil {
		return path
	}
	return relPath
}

// acceptExplicit decides whether a file named on the command line is linted.
func (w *walker) acceptExplicit(path string) bool {
	if matchesAny(w.rel(path), w.opts.ExcludeGlobs) {
		return false
	}
	if hasExtension(path, w.exts) {
		return true
	}
	if !w.opts.DetectContent {
		return false
	}
	content, err := os.ReadFile(path)
	if err != nil {
		// Unreadable files surface as outcome errors when linted by extension;
		// here they are simply not LaTeX.
		return false
	}
	lang := langdetect.Detect(path, content)
	if lang == langdetect.LangTeX {
		return true
	}
	if w.opts.OnSkip != nil {
		w.opts.OnSkip(path, lang)
	}
	return false
}

// walk recursively collects matching files below root.
func (w *walker) walk(root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrPermission) {
				return nil
			}
			return walkErr
		}

		hidden := path != root && strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if hidden || matchesAny(w.rel(path), w.opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				return nil //nolint:nilerr // Broken symlinks are skipped.
			}
			if target.IsDir() {
				if !w.opts.FollowSymlinks {
					return nil
				}
				resolved, err := filepath.EvalSymlinks(path)
				if err != nil {
					return nil //nolint:nilerr // Unresolvable symlinks are skipped.
				}
				return w.walk(resolved)
			}
		}

		if hasExtension(path, w.exts) && !matchesAny(w.rel(path), w.opts.ExcludeGlobs) {
			w.add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// hasExtension reports whether path ends in one of exts, ignoring case.
func hasExtension(path string, exts []string) bool {
	ext := filepath.Ext(path)
	return slices.ContainsFunc(exts, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}

// matchesAny reports whether relPath matches one of the glob patterns.
func matchesAny(relPath string, patterns []string) bool {
	return slices.ContainsFunc(patterns, func(pattern string) bool {
		return matchGlob(relPath, pattern)
	})
}

// matchGlob matches a slash-separated path against a doublestar pattern.
// A pattern without a slash also matches the base name.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if matched, err := doublestar.Match(pattern, path); err == nil && matched {
		return true
	}
	if !strings.Contains(pattern, "/") {
		matched, err := doublestar.Match(pattern, filepath.Base(path))
		return err == nil && matched
	}
	return false
}
