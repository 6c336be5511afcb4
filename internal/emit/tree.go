// Package emit renders a compiled project tree: per-scenario sources,
// configuration, manifest, runner and setup scripts, documentation, and the
// build descriptors of build-system targets. Rendering is pure; writing the
// tree to disk is a separate, explicit step.
package emit

import (
	"fmt"
	"os"
	"path/filepath"
)

// EmittedFile is one file of a project tree. Paths are POSIX-style and
// relative to the project root.
type EmittedFile struct {
	Path       string
	Content    []byte
	Executable bool
}

// ProjectTree is the ordered set of files produced by one compilation. The
// order is defined by the layout rules: overhead files first in a fixed
// sequence, then per-scenario sources in scenario order.
type ProjectTree struct {
	ProjectName string
	Framework   string
	TestCount   int
	Files       []EmittedFile
}

// Paths returns the relative file paths in emission order.
func (t *ProjectTree) Paths() []string {
	paths := make([]string, len(t.Files))
	for i, f := range t.Files {
		paths[i] = f.Path
	}
	return paths
}

// add appends a file, enforcing path uniqueness within the tree.
func (t *ProjectTree) add(path string, content string, executable bool) error {
	for _, f := range t.Files {
		if f.Path == path {
			return fmt.Errorf("duplicate path in project tree: %s", path)
		}
	}
	t.Files = append(t.Files, EmittedFile{Path: path, Content: []byte(content), Executable: executable})
	return nil
}

// Write persists the tree beneath root, creating directories as needed.
// The executable bit is applied to files that carry it.
func (t *ProjectTree) Write(root string) error {
	for _, f := range t.Files {
		target := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", f.Path, err)
		}

		mode := os.FileMode(0o644)
		if f.Executable {
			mode = 0o755
		}
		if err := os.WriteFile(target, f.Content, mode); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.Path, err)
		}
	}
	return nil
}
