// internal/core/walker/walker.go
package walker

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"flatsource/internal/core/domain"
	"flatsource/internal/platform/errors"
	"flatsource/internal/platform/logx"
)

// Candidate is a file selected for migration.
type Candidate struct {
	// Path is the absolute source path.
	Path string

	// Name is the source file name.
	Name string

	// InputExt is the matched, normalized input extension.
	InputExt string

	// OutputExt is the extension the copy will carry.
	OutputExt string
}

// BaseName returns the file name without its extension.
func (c Candidate) BaseName() string {
	base, _ := domain.SplitExt(c.Name)
	return base
}

// Options configures a Walker.
type Options struct {
	Root     string
	Mapping  domain.ExtensionMapping
	Excludes []string

	// SkipDirs are absolute directories never entered, typically the destination.
	SkipDirs []string

	// UseGitIgnore also applies <Root>/.gitignore.
	UseGitIgnore bool

	Logger logx.Logger
}

// Walker traverses a directory tree and yields the files whose extension
// is in the mapping. Every Walk is an independent traversal.
type Walker struct {
	root     string
	mapping  domain.ExtensionMapping
	excludes *ExclusionMatcher
	ignore   *ignoreMatcher
	skipDirs map[string]struct{}
	logger   logx.Logger
}

// New builds a Walker. The root is resolved to an absolute path.
func New(opts Options) (*Walker, error) {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}

	root, err := resolveDir(opts.Root)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve root %s", opts.Root)
	}

	excludes, err := NewExclusionMatcher(opts.Excludes)
	if err != nil {
		return nil, err
	}

	w := &Walker{
		root:     root,
		mapping:  opts.Mapping,
		excludes: excludes,
		skipDirs: make(map[string]struct{}, len(opts.SkipDirs)),
		logger:   opts.Logger.With("component", "walker"),
	}

	for _, dir := range opts.SkipDirs {
		abs, err := resolveDir(dir)
		if err != nil {
			continue
		}
		w.skipDirs[abs] = struct{}{}
	}

	if opts.UseGitIgnore {
		w.ignore, err = loadIgnoreMatcher(root)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", GitIgnoreFile)
		}
		if w.ignore != nil {
			w.logger.Debug("gitignore loaded", "rules", w.ignore.lines)
		}
	}

	return w, nil
}

// Root returns the absolute scan root.
func (w *Walker) Root() string {
	return w.root
}

// Walk calls fn for every candidate file. Excluded directories are pruned
// before they are entered, so nothing below them is ever visited.
// Traversal order is not part of the contract.
//
// An error returned by fn stops the walk and is returned as is.
func (w *Walker) Walk(ctx context.Context, fn func(Candidate) error) error {
	return filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Errorf("%w: %w", errors.ErrCanceled, ctxErr)
		}

		if err != nil {
			if path == w.root {
				return err
			}
			w.logger.Warn("skipping unreadable path", "path", path, "error", err.Error())
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path == w.root {
				return nil
			}
			if w.pruned(path, d.Name()) {
				return fs.SkipDir
			}
			return nil
		}

		candidate, ok := w.match(path, d)
		if !ok {
			return nil
		}
		return fn(candidate)
	})
}

// Count returns the number of candidates without reading any file content.
func (w *Walker) Count(ctx context.Context) (int, error) {
	n := 0
	err := w.Walk(ctx, func(Candidate) error {
		n++
		return nil
	})
	return n, err
}

func (w *Walker) pruned(path, name string) bool {
	if w.excludes.Excluded(name) {
		w.logger.Debug("excluded directory", "dir", path)
		return true
	}
	if _, skip := w.skipDirs[path]; skip {
		w.logger.Debug("skipping destination inside root", "dir", path)
		return true
	}
	if w.ignore != nil && w.ignore.Ignored(w.rel(path), true) {
		w.logger.Debug("gitignored directory", "dir", path)
		return true
	}
	return false
}

func (w *Walker) match(path string, d fs.DirEntry) (Candidate, bool) {
	if !isRegular(path, d) {
		return Candidate{}, false
	}

	_, ext := domain.SplitExt(d.Name())
	target, ok := w.mapping.Lookup(ext)
	if !ok {
		return Candidate{}, false
	}

	if w.ignore != nil && w.ignore.Ignored(w.rel(path), false) {
		w.logger.Debug("gitignored file", "path", path)
		return Candidate{}, false
	}

	return Candidate{
		Path:      path,
		Name:      d.Name(),
		InputExt:  strings.ToLower(ext),
		OutputExt: target,
	}, true
}

func (w *Walker) rel(path string) string {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return path
	}
	return rel
}

// resolveDir returns the absolute path of dir with symlinks resolved when it exists.
func resolveDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

// isRegular accepts regular files and symlinks that resolve to one.
func isRegular(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
