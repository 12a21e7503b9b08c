// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package run

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"runtime/trace"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/threadsafety/internal/astutil"
	"fillmore-labs.com/threadsafety/internal/config"
	"fillmore-labs.com/threadsafety/internal/mutability"
	"fillmore-labs.com/threadsafety/internal/report"
	"fillmore-labs.com/threadsafety/internal/rubyparse"
	"fillmore-labs.com/threadsafety/internal/rule"
	"fillmore-labs.com/threadsafety/internal/syntax"
)

// ErrReadSource is returned when a Ruby source file can't be read.
var ErrReadSource = errors.New("can't read source")

// rubyExt is the file extension of analyzed sources.
const rubyExt = ".rb"

// fileResult is the outcome of analyzing one source file.
type fileResult struct {
	path     string
	tree     *syntax.Tree
	findings []rule.Finding
	err      error // rule failures, reported as internal errors
}

// Run executes the threadsafety analyzer's pipeline on the Ruby sources of a package.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "ThreadSafety")
	defer task.End()

	if p.Pkg != nil {
		trace.Log(ctx, "package", p.Pkg.Path())

		// Sources next to external test packages are reported with the package under test
		if strings.HasSuffix(p.Pkg.Name(), "_test") {
			return nil, nil
		}
	}

	if r.Rules.Empty() {
		return nil, nil
	}

	files := SourceFiles(ctx, p)
	if len(files) == 0 {
		return nil, nil
	}

	// Stage 1: Read, parse and check all files in parallel
	results := make([]fileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range files {
		g.Go(func() error {
			res, err := r.checkFile(gctx, path)
			if err != nil {
				return err
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("threadsafety: %w", err)
	}

	// Stage 2: Register files and report diagnostics in path order
	for _, res := range results {
		if res.tree == nil {
			continue // skipped
		}

		handle := p.Fset.AddFile(res.path, -1, len(res.tree.Source))
		handle.SetLinesForContent(res.tree.Source)

		currentFile := astutil.NewCurrentFile(handle, res.tree)
		if !currentFile.Valid() {
			slog.WarnContext(ctx, "File without valid info", slog.String("file", res.path))

			continue
		}

		if res.err != nil {
			astutil.InternalError(p, currentFile.Range(res.tree.Root.Span()), "%s: %v", filepath.Base(res.path), res.err)
		}

		report.ProcessFindings(ctx, p, currentFile, res.findings, r.Behavior)
	}

	return nil, nil
}

// checkFile reads and checks a single file.
func (r *Options) checkFile(ctx context.Context, path string) (fileResult, error) {
	defer trace.StartRegion(ctx, "CheckFile").End()

	src, err := os.ReadFile(path)
	if err != nil {
		return fileResult{}, fmt.Errorf("%w: %w", ErrReadSource, err)
	}

	tree, findings, err := r.Check(ctx, src)
	switch {
	case errors.Is(err, rule.ErrMalformedTree):
		// Keep the findings of the remaining nodes

	case err != nil:
		return fileResult{}, fmt.Errorf("%s: %w", path, err)

	case tree == nil:
		slog.DebugContext(ctx, "Skipping generated file", slog.String("file", path))

		return fileResult{path: path}, nil
	}

	if tree.HasErrors {
		slog.DebugContext(ctx, "Source has syntax errors", slog.String("file", path))
	}

	return fileResult{path: path, tree: tree, findings: findings, err: err}, nil
}

// Check parses a Ruby source and returns the findings of the enabled rules.
//
// Generated sources are skipped unless [config.IncludeGenerated] is set; in
// that case the returned tree is nil.
func (r *Options) Check(ctx context.Context, src []byte) (*syntax.Tree, []rule.Finding, error) {
	tree, err := rubyparse.Parse(ctx, src)
	if err != nil {
		return nil, nil, err
	}

	if !r.Behavior.Enabled(config.IncludeGenerated) && astutil.IsGenerated(tree) {
		return nil, nil, nil
	}

	frozenStrings := mutability.FrozenStrings(tree, r.Behavior.Enabled(config.FrozenStringLiterals))
	m := mutability.New(r.Policy, r.AllowList, frozenStrings)

	findings, err := rule.NewSet(config.IDs(r.Rules)...).Run(ctx, rule.NewContext(tree, m))

	return tree, findings, err
}

// SourceFiles returns the sorted paths of the Ruby sources belonging to a package:
// those in the directories of its Go files and those listed as other or ignored files.
func SourceFiles(ctx context.Context, p *analysis.Pass) []string {
	var (
		paths = make(map[string]struct{})
		dirs  = make(map[string]struct{})
	)

	for _, f := range p.Files {
		if handle := p.Fset.File(f.FileStart); handle != nil {
			dirs[filepath.Dir(handle.Name())] = struct{}{}
		}
	}

	for _, name := range slices.Concat(p.OtherFiles, p.IgnoredFiles) {
		if filepath.Ext(name) == rubyExt {
			paths[filepath.Clean(name)] = struct{}{}
		}
	}

	for dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			slog.DebugContext(ctx, "Can't read package directory", slog.String("dir", dir), slog.Any("error", err))

			continue
		}

		for _, e := range entries {
			if e.Type().IsRegular() && filepath.Ext(e.Name()) == rubyExt {
				paths[filepath.Join(dir, e.Name())] = struct{}{}
			}
		}
	}

	return slices.Sorted(maps.Keys(paths))
}
