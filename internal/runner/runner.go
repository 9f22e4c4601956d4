// Package runner finds JavaScript files and checks them in parallel.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/AdamBrianBright/callbackreturn/internal/jssyntax"
	"github.com/AdamBrianBright/callbackreturn/internal/log"
	"github.com/AdamBrianBright/callbackreturn/internal/rule"
)

// ErrNoFiles is returned by Collect when the paths hold no JavaScript files.
var ErrNoFiles = errors.New("no javascript files found")

// skipDirs are never descended into.
var skipDirs = []string{"node_modules", "vendor"}

// FileResult is the outcome of checking one file. Err is set when the file could not be
// read or parsed, in which case Diagnostics is empty.
type FileResult struct {
	Path        string
	Diagnostics []rule.Diagnostic
	Err         error
}

// Failed reports whether the file has violations or could not be checked.
func (r FileResult) Failed() bool {
	return r.Err != nil || len(r.Diagnostics) > 0
}

// Collect expands paths into a sorted, duplicate free list of files. Files given explicitly
// are kept whatever their extension; directories are walked for JavaScript files, skipping
// hidden directories and dependency folders.
func Collect(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, filepath.Clean(path))
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if p != path && skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if slices.Contains(jssyntax.Extensions, filepath.Ext(p)) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", path, err)
		}
	}

	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	// Sort for a deterministic order.
	slices.Sort(files)
	return slices.Compact(files), nil
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || slices.Contains(skipDirs, name)
}

// Run checks files with at most jobs files in flight (GOMAXPROCS when jobs <= 0).
// Results follow the order of files. Only cancellation of ctx is returned as an error;
// read and parse failures stay with their file.
func Run(ctx context.Context, r *rule.Rule, files []string, jobs int) ([]FileResult, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine writes its own index.
	results := make([]FileResult, len(files))
	if len(files) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = CheckFile(gctx, r, path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("check files: %w", err)
	}

	return results, nil
}

// CheckFile reads, parses and checks a single file.
func CheckFile(ctx context.Context, r *rule.Rule, path string) FileResult {
	res := FileResult{Path: path}

	src, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("read: %w", err)
		return res
	}

	prog, err := jssyntax.Parse(ctx, src)
	if err != nil {
		log.Log("Failed to parse %s: %v\n", path, err)
		res.Err = fmt.Errorf("parse: %w", err)
		return res
	}

	res.Diagnostics = r.Check(prog)
	log.Log("Checked %s: %d diagnostics\n", path, len(res.Diagnostics))

	return res
}
