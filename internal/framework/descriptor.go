// Package framework holds the closed registry of target automation
// frameworks. Everything the emitter needs to render a project for one
// target lives in its capability descriptor; per-framework differences are
// data here, never control flow elsewhere.
package framework

import (
	"fmt"

	"github.com/lance13c/testforge/internal/scenario"
)

// Language identifies the target source language. It selects the on-disk
// project shape: dynamic languages use the flat layout, Java uses the
// build-system layout.
type Language string

const (
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangJava       Language = "java"
)

// Typed reports whether the language uses the build-system layout.
func (l Language) Typed() bool {
	return l == LangJava
}

// Layout declares where a target's files live inside the project root.
// Empty directory fields mean the project root itself (flat layout).
type Layout struct {
	TestDir     string // per-scenario sources
	ResourceDir string // test resources (build-system targets)
	PackagePath string // Java package for generated classes

	ConfigPath   string
	ManifestPath string
	RunnerPath   string
	BuildPath    string // build descriptor, build-system targets only
	SuitePath    string // test-suite descriptor, build-system targets only

	FileExt    string // extension for per-scenario sources
	FilePrefix string // file name prefix for per-scenario sources
}

// Templates are the parametric one-line code fragments a descriptor renders
// steps with. Fragments take their arguments through fmt verbs; Find takes
// the locator expression produced by the locator vocabulary.
type Templates struct {
	Navigate     string // %s = url
	Find         string // %s = locator expression
	Click        string
	Clear        string
	Type         string // %s = text
	Sleep        string // %d = seconds
	Get          string // %s = url (api targets)
	AssertStatus string // fixed status-200 assertion (api targets)
	OpenNoop     string // comment text for Open on mobile targets
	Comment      string // line-comment token, e.g. "#" or "//"
}

// Descriptor is the immutable capability record for one target framework.
type Descriptor struct {
	ID          string
	DisplayName string
	Kind        scenario.TestKind
	Language    Language

	// Dependencies is the pinned manifest content, one entry per line.
	Dependencies []string

	// Imports is the verbatim import block of every per-scenario source.
	Imports []string

	// Locators maps abstract strategies to locator-expression patterns;
	// each pattern consumes the locator value through one %s verb.
	Locators map[scenario.Strategy]string

	// Fields are per-class member declarations (typed targets).
	Fields []string

	// Setup and Teardown are the per-test idiom bodies, one line each.
	Setup    []string
	Teardown []string

	// WaitSeconds is the default bounded-wait duration for Wait steps
	// that carry no datum.
	WaitSeconds int

	// ScreenshotOnError, when set, is emitted in the failure path of each
	// test; %s is the scenario identifier.
	ScreenshotOnError string

	// ConfigImports and ConfigExtras extend the generated configuration
	// class of typed targets: extra import lines and extra member lines.
	ConfigImports []string
	ConfigExtras  []string

	Templates  Templates
	Layout     Layout
	RunCommand string
}

// Locator renders the locator expression for a step's reference using the
// framework vocabulary. When the strategy has no mapping it falls back to
// id and reports false so the caller can record a warning.
func (d *Descriptor) Locator(ref scenario.LocatorRef) (string, bool) {
	if pattern, ok := d.Locators[ref.Strategy]; ok {
		return fmt.Sprintf(pattern, ref.Value), true
	}
	if pattern, ok := d.Locators[scenario.StrategyID]; ok {
		return fmt.Sprintf(pattern, ref.Value), false
	}
	return ref.Value, false
}
