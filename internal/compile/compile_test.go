package compile

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lance13c/testforge/internal/quota"
)

const header = "ScenarioKey,ScenarioName,ScenarioDescription,Priority,TestKind,StepIndex,StepDescription,LocatorStrategy,LocatorValue,ActionToken,InputDatum,ExpectedOutcome\n"

const loginCSV = header +
	"TC001,Login,Valid user logs in,High,Web,1,Open the site,,,open,https://example.com,\n" +
	"TC001,,,,,2,Enter the user name,id,username,type,alice,\n" +
	"TC001,,,,,3,Submit,id,login-button,click,,Dashboard is shown\n"

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func compileCSV(t *testing.T, content, frameworkID string) (*Result, string) {
	t.Helper()
	out := t.TempDir()
	result, err := New().Compile(context.Background(), Options{
		Source:    writeCSV(t, content),
		Framework: frameworkID,
		OutputDir: out,
	})
	require.NoError(t, err)
	return result, out
}

func kindOf(t *testing.T, err error) Kind {
	t.Helper()
	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	return cerr.Kind
}

func TestCompileMinimalLogin(t *testing.T) {
	result, _ := compileCSV(t, loginCSV, "selenium")

	assert.Equal(t, 1, result.TestCount)
	assert.Equal(t, "selenium", result.Framework)
	assert.NotEmpty(t, result.RunID)
	assert.Contains(t, result.Files, "test_tc001.py")
	assert.Contains(t, result.Files, "requirements.txt")

	source, err := os.ReadFile(filepath.Join(result.ProjectPath, "test_tc001.py"))
	require.NoError(t, err)
	text := string(source)
	assert.Contains(t, text, "class TestLogin:")
	assert.Contains(t, text, "self.driver.get('https://example.com')")
	assert.Contains(t, text, "element.send_keys('alice')")
	assert.Contains(t, text, "# expected: Dashboard is shown")
}

func TestCompileDefaultProjectName(t *testing.T) {
	result, out := compileCSV(t, loginCSV, "selenium")
	assert.Equal(t, filepath.Join(out, "scenarios_selenium"), result.ProjectPath)
}

func TestCompileDuplicateKeysSplitScenarios(t *testing.T) {
	duplicated := loginCSV +
		"TC002,Logout,,Low,Web,1,Log out,id,logout,click,,\n" +
		"TC001,Login again,,High,Web,1,Open the site,,,open,https://example.com,\n"

	result, _ := compileCSV(t, duplicated, "selenium")

	assert.Equal(t, 3, result.TestCount)
	assert.Contains(t, result.Files, "test_tc001.py")
	assert.Contains(t, result.Files, "test_tc002.py")
	assert.Contains(t, result.Files, "test_tc001_step_1.py")
}

func TestCompileUnknownTokenIsWarning(t *testing.T) {
	odd := header +
		"TC001,Login,,High,Web,1,Do something odd,,,levitate,,\n"

	result, _ := compileCSV(t, odd, "selenium")

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "unknown action token")

	source, err := os.ReadFile(filepath.Join(result.ProjectPath, "test_tc001.py"))
	require.NoError(t, err)
	assert.Contains(t, string(source), "# TODO: levitate")
}

func TestCompileMissingNameFails(t *testing.T) {
	nameless := header +
		"TC001,,,High,Web,1,Open the site,,,open,https://example.com,\n"

	_, err := New().Compile(context.Background(), Options{
		Source:    writeCSV(t, nameless),
		Framework: "selenium",
		OutputDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.Equal(t, KindValidationFailed, kindOf(t, err))

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	require.NotEmpty(t, cerr.Reasons)
}

func TestCompileHeaderMissing(t *testing.T) {
	_, err := New().Compile(context.Background(), Options{
		Source:    writeCSV(t, "Name,Steps\nLogin,3\n"),
		Framework: "selenium",
		OutputDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.Equal(t, KindHeaderMissing, kindOf(t, err))
}

func TestCompileSourceUnreadable(t *testing.T) {
	_, err := New().Compile(context.Background(), Options{
		Source:    filepath.Join(t.TempDir(), "scenarios.docx"),
		Framework: "selenium",
		OutputDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.Equal(t, KindSourceUnreadable, kindOf(t, err))
}

func TestCompileUnknownFramework(t *testing.T) {
	_, err := New().Compile(context.Background(), Options{
		Source:    writeCSV(t, loginCSV),
		Framework: "protractor",
		OutputDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.Equal(t, KindUnknownFramework, kindOf(t, err))
}

func TestCompileJavaLayout(t *testing.T) {
	result, _ := compileCSV(t, loginCSV, "selenium-java")

	assert.Contains(t, result.Files, "pom.xml")
	assert.Contains(t, result.Files, "testng.xml")
	assert.Contains(t, result.Files, "src/test/java/com/testforge/generated/TestLogin.java")

	source, err := os.ReadFile(filepath.Join(result.ProjectPath, "src", "test", "java", "com", "testforge", "generated", "TestLogin.java"))
	require.NoError(t, err)
	assert.Contains(t, string(source), "package com.testforge.generated;")
}

func TestCompileCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := t.TempDir()
	_, err := New().Compile(ctx, Options{
		Source:    writeCSV(t, loginCSV),
		Framework: "selenium",
		OutputDir: out,
	})
	require.Error(t, err)
	assert.Equal(t, KindCanceled, kindOf(t, err))
	assert.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries, "no partial project should remain")
}

func TestCompileDeterminism(t *testing.T) {
	source := writeCSV(t, loginCSV)

	run := func() map[string][]byte {
		out := t.TempDir()
		result, err := New().Compile(context.Background(), Options{
			Source:    source,
			Framework: "selenium",
			OutputDir: out,
		})
		require.NoError(t, err)

		files := make(map[string][]byte)
		for _, rel := range result.Files {
			content, err := os.ReadFile(filepath.Join(result.ProjectPath, filepath.FromSlash(rel)))
			require.NoError(t, err)
			files[rel] = content
		}
		return files
	}

	assert.Equal(t, run(), run())
}

func TestCompileQuotaExceeded(t *testing.T) {
	_, err := New().Compile(context.Background(), Options{
		Source:    writeCSV(t, loginCSV),
		Framework: "selenium",
		OutputDir: t.TempDir(),
		Quota:     blockedQuota{},
	})
	require.Error(t, err)
	assert.Equal(t, KindQuotaExceeded, kindOf(t, err))
	assert.ErrorIs(t, err, quota.ErrLimitReached)
}

func TestCompileRecordsRun(t *testing.T) {
	recorder := &recordingQuota{}
	result, err := New().Compile(context.Background(), Options{
		Source:    writeCSV(t, loginCSV),
		Framework: "selenium",
		OutputDir: t.TempDir(),
		Quota:     recorder,
	})
	require.NoError(t, err)
	require.Len(t, recorder.runs, 1)
	assert.Equal(t, result.RunID, recorder.runs[0].RunID)
	assert.Equal(t, 1, recorder.runs[0].TestCount)
}

func TestPackageRoundTrip(t *testing.T) {
	result, _ := compileCSV(t, loginCSV, "selenium")

	archive, err := New().Package(result.ProjectPath)
	require.NoError(t, err)
	assert.Equal(t, result.ProjectPath+".zip", archive)

	data, err := os.ReadFile(archive)
	require.NoError(t, err)
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	names := make(map[string]bool, len(r.File))
	for _, f := range r.File {
		names[f.Name] = true
	}
	prefix := filepath.Base(result.ProjectPath)
	for _, rel := range result.Files {
		assert.True(t, names[prefix+"/"+rel], "archive missing %s", rel)
	}
}

func TestPackageMissingProject(t *testing.T) {
	_, err := New().Package(filepath.Join(t.TempDir(), "gone"))
	require.Error(t, err)
	assert.Equal(t, KindPackagingFailed, kindOf(t, err))
}

type blockedQuota struct{}

func (blockedQuota) Check() error           { return quota.ErrLimitReached }
func (blockedQuota) Record(quota.Run) error { return nil }

type recordingQuota struct {
	runs []quota.Run
}

func (q *recordingQuota) Check() error { return nil }

func (q *recordingQuota) Record(run quota.Run) error {
	q.runs = append(q.runs, run)
	return nil
}
