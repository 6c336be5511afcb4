// Package pack turns an emitted project into a single downloadable ZIP
// archive. Entries preserve the emission order and the executable bit so
// the unpacked project behaves like a freshly written one.
package pack

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lance13c/testforge/internal/emit"
)

// ErrProjectMissing reports a packaging request for a project that was
// never emitted or has been removed.
var ErrProjectMissing = errors.New("project directory not found")

// Tree archives an in-memory project tree. Every entry is prefixed with
// the project name so the archive unpacks into a single directory.
func Tree(tree *emit.ProjectTree) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for _, f := range tree.Files {
		if err := writeEntry(w, tree.ProjectName+"/"+f.Path, f.Content, f.Executable); err != nil {
			w.Close()
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// Dir archives a project directory on disk. Entries are sorted by path so
// the archive is stable across runs and filesystems.
func Dir(root string) ([]byte, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrProjectMissing, root)
		}
		return nil, fmt.Errorf("failed to stat project: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrProjectMissing, root)
	}

	type entry struct {
		rel  string
		path string
		exec bool
	}
	var entries []entry

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		entries = append(entries, entry{
			rel:  filepath.ToSlash(rel),
			path: path,
			exec: fi.Mode()&0o100 != 0,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk project: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].rel < entries[j].rel })

	prefix := filepath.Base(root)
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for _, e := range entries {
		content, err := os.ReadFile(e.path)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("failed to read %s: %w", e.rel, err)
		}
		if err := writeEntry(w, prefix+"/"+e.rel, content, e.exec); err != nil {
			w.Close()
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile archives a project directory and writes the result next to it
// as <project>.zip, returning the archive path.
func WriteFile(root string) (string, error) {
	data, err := Dir(root)
	if err != nil {
		return "", err
	}

	target := strings.TrimSuffix(root, string(os.PathSeparator)) + ".zip"
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write archive: %w", err)
	}
	return target, nil
}

func writeEntry(w *zip.Writer, name string, content []byte, executable bool) error {
	header := &zip.FileHeader{
		Name:   name,
		Method: zip.Deflate,
	}
	mode := fs.FileMode(0o644)
	if executable {
		mode = 0o755
	}
	header.SetMode(mode)

	f, err := w.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("failed to add %s: %w", name, err)
	}
	if _, err := io.Copy(f, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("failed to add %s: %w", name, err)
	}
	return nil
}
