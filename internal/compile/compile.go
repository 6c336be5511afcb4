// Package compile orchestrates the pipeline: read a scenario source,
// normalize it, lower and emit a project for the requested framework, and
// optionally archive the result. Each stage is pure; this package owns
// the sequencing, cancellation, and filesystem side effects.
package compile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lance13c/testforge/internal/emit"
	"github.com/lance13c/testforge/internal/framework"
	"github.com/lance13c/testforge/internal/ingest"
	"github.com/lance13c/testforge/internal/pack"
	"github.com/lance13c/testforge/internal/quota"
	"github.com/lance13c/testforge/internal/scenario"
)

// Options configures one compilation.
type Options struct {
	// Source is the path to the .xlsx or .csv scenario table.
	Source string
	// Framework selects the target by registry identifier.
	Framework string
	// ProjectName names the output directory. Empty derives it from the
	// source file name and the framework.
	ProjectName string
	// OutputDir is where the project directory is created. Empty means
	// the current directory.
	OutputDir string
	// Quota gates and records the run. Nil disables quota handling.
	Quota quota.Service
}

// Result describes a finished compilation.
type Result struct {
	RunID       string
	ProjectPath string
	Files       []string
	Warnings    []string
	Counts      scenario.Counts
	Framework   string
	TestCount   int
	GeneratedAt time.Time
}

// Compiler runs compilations against a fixed framework registry.
type Compiler struct {
	registry *framework.Registry
}

// New returns a Compiler over the built-in targets.
func New() *Compiler {
	return &Compiler{registry: framework.NewRegistry()}
}

// Registry exposes the compiler's framework registry.
func (c *Compiler) Registry() *framework.Registry {
	return c.registry
}

// Compile runs the full pipeline and writes the project tree to disk.
// On failure or cancellation after writing began, the partial project
// directory is removed.
func (c *Compiler) Compile(ctx context.Context, opts Options) (*Result, error) {
	gate := opts.Quota
	if gate == nil {
		gate = quota.Unlimited{}
	}
	if err := gate.Check(); err != nil {
		return nil, failure(KindQuotaExceeded, err)
	}

	d, err := c.registry.Get(opts.Framework)
	if err != nil {
		return nil, failure(KindUnknownFramework, err)
	}

	if err := canceled(ctx); err != nil {
		return nil, err
	}

	read, err := ingest.Read(opts.Source)
	if err != nil {
		switch {
		case errors.Is(err, ingest.ErrHeaderMissing):
			return nil, failure(KindHeaderMissing, err)
		default:
			return nil, failure(KindSourceUnreadable, err)
		}
	}
	warnings := append([]string(nil), read.Warnings...)

	if err := canceled(ctx); err != nil {
		return nil, err
	}

	scenarios, validation := scenario.Normalize(read.Rows)
	warnings = append(warnings, validation.Warnings...)
	if !validation.Valid() {
		return nil, &Error{Kind: KindValidationFailed, Reasons: validation.Errors}
	}
	if len(scenarios) == 0 {
		return nil, &Error{Kind: KindValidationFailed, Reasons: []string{"source contains no scenarios"}}
	}

	if err := canceled(ctx); err != nil {
		return nil, err
	}

	projectName := opts.ProjectName
	if projectName == "" {
		projectName = defaultProjectName(opts.Source, d.ID)
	}

	tree, emitWarnings, err := emit.Emit(d, scenarios, projectName)
	if err != nil {
		return nil, failure(KindEmissionFailed, err)
	}
	warnings = append(warnings, emitWarnings...)

	if err := canceled(ctx); err != nil {
		return nil, err
	}

	projectPath := filepath.Join(opts.OutputDir, projectName)
	if err := tree.Write(projectPath); err != nil {
		os.RemoveAll(projectPath)
		return nil, failure(KindEmissionFailed, err)
	}
	if err := canceled(ctx); err != nil {
		os.RemoveAll(projectPath)
		return nil, err
	}

	result := &Result{
		RunID:       uuid.NewString(),
		ProjectPath: projectPath,
		Files:       tree.Paths(),
		Warnings:    warnings,
		Counts:      validation.Counts,
		Framework:   d.ID,
		TestCount:   len(scenarios),
		GeneratedAt: time.Now(),
	}

	if err := gate.Record(quota.Run{
		RunID:     result.RunID,
		Source:    opts.Source,
		Framework: d.ID,
		Project:   projectName,
		TestCount: result.TestCount,
		Warnings:  len(warnings),
		CreatedAt: result.GeneratedAt,
	}); err != nil {
		warnings = append(warnings, fmt.Sprintf("failed to record run: %v", err))
		result.Warnings = warnings
	}

	return result, nil
}

// Package archives an emitted project directory as <project>.zip next to
// it and returns the archive path.
func (c *Compiler) Package(projectPath string) (string, error) {
	archive, err := pack.WriteFile(projectPath)
	if err != nil {
		return "", failure(KindPackagingFailed, err)
	}
	return archive, nil
}

func defaultProjectName(source, frameworkID string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ToLower(base)
	base = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			return r
		}
		return '_'
	}, base)
	if base == "" {
		base = "project"
	}
	return base + "_" + frameworkID
}

func canceled(ctx context.Context) *Error {
	if err := ctx.Err(); err != nil {
		return failure(KindCanceled, err)
	}
	return nil
}
