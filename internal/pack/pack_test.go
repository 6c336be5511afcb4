package pack

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lance13c/testforge/internal/emit"
)

func sampleTree() *emit.ProjectTree {
	return &emit.ProjectTree{
		ProjectName: "demo",
		Framework:   "selenium",
		TestCount:   1,
		Files: []emit.EmittedFile{
			{Path: "requirements.txt", Content: []byte("selenium==4.15.2\n")},
			{Path: "run_tests.py", Content: []byte("#!/usr/bin/env python3\n"), Executable: true},
			{Path: "test_login.py", Content: []byte("class TestLogin:\n    pass\n")},
		},
	}
}

func readArchive(t *testing.T, data []byte) map[string]*zip.File {
	t.Helper()
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	files := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		files[f.Name] = f
	}
	return files
}

func TestTreeRoundTrip(t *testing.T) {
	tree := sampleTree()
	data, err := Tree(tree)
	require.NoError(t, err)

	files := readArchive(t, data)
	require.Len(t, files, 3)

	for _, f := range tree.Files {
		entry, ok := files["demo/"+f.Path]
		require.True(t, ok, "missing entry for %s", f.Path)

		rc, err := entry.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		assert.Equal(t, f.Content, content, "content mismatch for %s", f.Path)
	}
}

func TestTreePreservesOrderAndMode(t *testing.T) {
	data, err := Tree(sampleTree())
	require.NoError(t, err)

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"demo/requirements.txt",
		"demo/run_tests.py",
		"demo/test_login.py",
	}, names)

	files := readArchive(t, data)
	assert.NotZero(t, files["demo/run_tests.py"].Mode()&0o100, "runner should stay executable")
	assert.Zero(t, files["demo/requirements.txt"].Mode()&0o100)
}

func TestDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# demo\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "setup.sh"), []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "test.py"), []byte("pass\n"), 0o644))

	data, err := Dir(root)
	require.NoError(t, err)

	files := readArchive(t, data)
	require.Len(t, files, 3)
	assert.Contains(t, files, "demo/README.md")
	assert.Contains(t, files, "demo/setup.sh")
	assert.Contains(t, files, "demo/src/test.py")
	assert.NotZero(t, files["demo/setup.sh"].Mode()&0o100)
}

func TestDirMissingProject(t *testing.T) {
	_, err := Dir(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProjectMissing)
}

func TestWriteFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo")
	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a\n"), 0o644))

	archive, err := WriteFile(root)
	require.NoError(t, err)
	assert.Equal(t, root+".zip", archive)

	data, err := os.ReadFile(archive)
	require.NoError(t, err)
	files := readArchive(t, data)
	assert.Contains(t, files, "demo/a.txt")
}

func TestDeterminism(t *testing.T) {
	// Tree archives carry no timestamps beyond the zero value, so two runs
	// over the same tree produce identical bytes.
	first, err := Tree(sampleTree())
	require.NoError(t, err)
	second, err := Tree(sampleTree())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
