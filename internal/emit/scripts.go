package emit

import (
	"fmt"
	"strings"

	"github.com/lance13c/testforge/internal/framework"
)

// renderRunner produces the test-runner entry point: it prepares the report
// and screenshot directories, invokes the framework's discovery tool in
// verbose mode with a report flag, forwards extra arguments, and exits with
// the tool's exit code.
func renderRunner(d *framework.Descriptor, projectName string) string {
	switch d.Language {
	case framework.LangJava:
		return renderMavenRunner(d)
	case framework.LangJavaScript:
		return renderCypressRunner(d)
	default:
		return renderPytestRunner(projectName)
	}
}

func renderPytestRunner(projectName string) string {
	var b strings.Builder

	b.WriteString("#!/usr/bin/env python3\n")
	fmt.Fprintf(&b, "\"\"\"Test runner for %s.\"\"\"\n\n", projectName)
	b.WriteString("import os\n")
	b.WriteString("import sys\n\n")
	b.WriteString("import pytest\n\n\n")
	b.WriteString("def main():\n")
	b.WriteString("    os.makedirs('reports', exist_ok=True)\n")
	b.WriteString("    os.makedirs('screenshots', exist_ok=True)\n\n")
	b.WriteString("    args = [\n")
	b.WriteString("        '--verbose',\n")
	b.WriteString("        '--html=reports/report.html',\n")
	b.WriteString("        '--self-contained-html',\n")
	b.WriteString("        '--tb=short',\n")
	b.WriteString("    ]\n")
	b.WriteString("    args.extend(sys.argv[1:])\n\n")
	b.WriteString("    return pytest.main(args)\n\n\n")
	b.WriteString("if __name__ == '__main__':\n")
	b.WriteString("    sys.exit(main())\n")

	return b.String()
}

func renderMavenRunner(d *framework.Descriptor) string {
	var b strings.Builder

	b.WriteString("#!/bin/sh\n\n")
	b.WriteString("mkdir -p reports screenshots\n\n")
	fmt.Fprintf(&b, "exec mvn test -Dsurefire.suiteXmlFiles=%s -Dsurefire.reportsDirectory=reports \"$@\"\n", d.Layout.SuitePath)

	return b.String()
}

func renderCypressRunner(d *framework.Descriptor) string {
	var b strings.Builder

	b.WriteString("#!/bin/sh\n\n")
	b.WriteString("mkdir -p reports screenshots\n\n")
	fmt.Fprintf(&b, "exec %s \"$@\"\n", d.RunCommand)

	return b.String()
}

// renderSetupPOSIX produces the one-shot bootstrap script for POSIX hosts.
// Both host variants are always emitted so the tree is identical no matter
// where the compiler ran.
func renderSetupPOSIX(d *framework.Descriptor) string {
	var b strings.Builder

	b.WriteString("#!/bin/sh\n")
	b.WriteString("set -e\n\n")
	b.WriteString("echo \"========================================\"\n")
	fmt.Fprintf(&b, "echo \"Environment setup - %s\"\n", d.DisplayName)
	b.WriteString("echo \"========================================\"\n\n")

	switch d.Language {
	case framework.LangJava:
		b.WriteString("if ! command -v mvn >/dev/null 2>&1; then\n")
		b.WriteString("    echo \"ERROR: Maven not found. Install Maven 3.8+ and retry.\"\n")
		b.WriteString("    exit 1\n")
		b.WriteString("fi\n\n")
		b.WriteString("mvn -q dependency:resolve\n")
	case framework.LangJavaScript:
		b.WriteString("if ! command -v npm >/dev/null 2>&1; then\n")
		b.WriteString("    echo \"ERROR: Node.js not found. Install Node 18+ and retry.\"\n")
		b.WriteString("    exit 1\n")
		b.WriteString("fi\n\n")
		fmt.Fprintf(&b, "xargs npm install --save-dev < %s\n", d.Layout.ManifestPath)
	default:
		b.WriteString("if ! command -v python3 >/dev/null 2>&1; then\n")
		b.WriteString("    echo \"ERROR: Python not found. Install Python 3.8+ and retry.\"\n")
		b.WriteString("    exit 1\n")
		b.WriteString("fi\n\n")
		b.WriteString("python3 -m venv venv\n")
		b.WriteString(". venv/bin/activate\n\n")
		b.WriteString("pip install --upgrade pip\n")
		fmt.Fprintf(&b, "pip install -r %s\n", d.Layout.ManifestPath)
	}

	b.WriteString("\necho \"Setup complete.\"\n")
	return b.String()
}

// renderSetupWindows produces the command-shell bootstrap variant.
func renderSetupWindows(d *framework.Descriptor) string {
	var b strings.Builder

	b.WriteString("@echo off\n")
	b.WriteString("echo ========================================\n")
	fmt.Fprintf(&b, "echo Environment setup - %s\n", d.DisplayName)
	b.WriteString("echo ========================================\n\n")

	switch d.Language {
	case framework.LangJava:
		b.WriteString("where mvn >nul 2>nul\n")
		b.WriteString("if %errorlevel% neq 0 (\n")
		b.WriteString("    echo ERROR: Maven not found. Install Maven 3.8+ and retry.\n")
		b.WriteString("    exit /b 1\n")
		b.WriteString(")\n\n")
		b.WriteString("mvn -q dependency:resolve\n")
	case framework.LangJavaScript:
		b.WriteString("where npm >nul 2>nul\n")
		b.WriteString("if %errorlevel% neq 0 (\n")
		b.WriteString("    echo ERROR: Node.js not found. Install Node 18+ and retry.\n")
		b.WriteString("    exit /b 1\n")
		b.WriteString(")\n\n")
		fmt.Fprintf(&b, "for /f \"delims=\" %%%%d in (%s) do npm install --save-dev %%%%d\n", d.Layout.ManifestPath)
	default:
		b.WriteString("python --version >nul 2>nul\n")
		b.WriteString("if %errorlevel% neq 0 (\n")
		b.WriteString("    echo ERROR: Python not found. Install Python 3.8+ and retry.\n")
		b.WriteString("    exit /b 1\n")
		b.WriteString(")\n\n")
		b.WriteString("python -m venv venv\n")
		b.WriteString("call venv\\Scripts\\activate.bat\n\n")
		b.WriteString("pip install --upgrade pip\n")
		fmt.Fprintf(&b, "pip install -r %s\n", d.Layout.ManifestPath)
	}

	b.WriteString("\necho Setup complete.\n")
	return b.String()
}
