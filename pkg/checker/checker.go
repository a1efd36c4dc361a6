package checker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"runtime"
	"strings"

	"github.com/larynjahor/brackets/container"
	"github.com/larynjahor/brackets/pkg"
	"github.com/larynjahor/brackets/pkg/bracket"
	"golang.org/x/sync/errgroup"
)

type Option func(*Checker)

// WithWorkers bounds the number of files validated at once. Values below one
// keep the default.
func WithWorkers(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithExtensions restricts directory walks to files with one of exts, e.g.
// ".go". Files named explicitly as targets are always checked.
func WithExtensions(exts ...string) Option {
	return func(c *Checker) {
		for _, ext := range exts {
			if ext == "" {
				continue
			}

			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}

			c.exts.Add(ext)
		}
	}
}

func New(
	fsys fs.FS,
	validator *bracket.Validator,
	opts ...Option,
) *Checker {
	if validator == nil {
		validator = bracket.NewValidator(nil)
	}

	c := &Checker{
		fs:        fsys,
		Validator: validator,
		workers:   runtime.GOMAXPROCS(0),
		exts:      container.NewSet[string](8),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type Checker struct {
	fs        fs.FS
	Validator *bracket.Validator
	workers   int
	exts      *container.Set[string]
}

// Do validates every file under targets. Targets are slash separated paths
// inside the checker's filesystem.
func (c *Checker) Do(ctx context.Context, targets []string) (*Report, error) {
	state := &State{
		seen: container.NewSet[string](1024),
	}

	for _, target := range targets {
		if err := c.collect(ctx, state, path.Clean(target)); err != nil {
			return nil, err
		}
	}

	slog.DebugContext(ctx, "collected files", slog.Int("count", len(state.paths)), slog.Int("workers", c.workers))

	results := make([]FileResult, len(state.paths))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(c.workers)

	for i, filePath := range state.paths {
		if egCtx.Err() != nil {
			break
		}

		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			res, err := c.checkFile(filePath)
			if err != nil {
				return err
			}

			results[i] = res

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{Files: results}
	report.sort()

	return report, nil
}

func (c *Checker) collect(ctx context.Context, state *State, target string) error {
	info, err := fs.Stat(c.fs, target)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", pkg.ErrTargetNotFound, target)
	case err != nil:
		return err
	}

	if !info.IsDir() {
		state.add(target)

		return nil
	}

	err = fs.WalkDir(c.fs, target, func(fullPath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if fullPath != target && strings.HasPrefix(entry.Name(), ".") {
				return fs.SkipDir
			}

			return nil
		}

		if !entry.Type().IsRegular() || !c.allowed(fullPath) {
			return nil
		}

		state.add(fullPath)

		return nil
	})
	if err != nil {
		return fmt.Errorf("walk target=%s: %w", target, err)
	}

	slog.DebugContext(ctx, "walked target", slog.String("target", target))

	return nil
}

func (c *Checker) allowed(filePath string) bool {
	return c.exts.Len() == 0 || c.exts.Contains(path.Ext(filePath))
}

func (c *Checker) checkFile(filePath string) (FileResult, error) {
	content, err := fs.ReadFile(c.fs, filePath)
	if err != nil {
		return FileResult{}, fmt.Errorf("read %s: %w", filePath, err)
	}

	res := FileResult{
		Path:  filePath,
		Valid: true,
	}

	if failure, ok := c.Validator.Check(string(content)).Get(); ok {
		res.Valid = false
		res.Failure = &failure

		slog.Debug("unbalanced file", slog.String("path", filePath), slog.String("reason", failure.Reason.String()))
	}

	return res, nil
}

type State struct {
	seen  *container.Set[string]
	paths []string
}

func (s *State) add(filePath string) {
	if s.seen.Add(filePath) {
		s.paths = append(s.paths, filePath)
	}
}
