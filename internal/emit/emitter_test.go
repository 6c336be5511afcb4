package emit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lance13c/testforge/internal/framework"
	"github.com/lance13c/testforge/internal/scenario"
)

var registry = framework.NewRegistry()

func descriptor(t *testing.T, id string) *framework.Descriptor {
	t.Helper()
	d, err := registry.Get(id)
	require.NoError(t, err)
	return d
}

func loginScenario() scenario.Scenario {
	return scenario.Scenario{
		ID:       "LOGIN",
		Key:      "LOGIN",
		Name:     "Login",
		Priority: scenario.PriorityHigh,
		Kind:     scenario.KindWeb,
		Steps: []scenario.Step{
			{Index: 1, Action: scenario.Action{Kind: scenario.ActionOpen}, Datum: "https://example.com"},
			{Index: 2, Action: scenario.Action{Kind: scenario.ActionClick}, Locator: scenario.LocatorRef{Strategy: scenario.StrategyID, Value: "user"}},
			{Index: 3, Action: scenario.Action{Kind: scenario.ActionType}, Locator: scenario.LocatorRef{Strategy: scenario.StrategyID, Value: "user"}, Datum: "alice"},
			{Index: 4, Action: scenario.Action{Kind: scenario.ActionClick}, Locator: scenario.LocatorRef{Strategy: scenario.StrategyID, Value: "go"}},
		},
	}
}

func find(t *testing.T, tree *ProjectTree, path string) EmittedFile {
	t.Helper()
	for _, f := range tree.Files {
		if f.Path == path {
			return f
		}
	}
	t.Fatalf("file %s not in tree %v", path, tree.Paths())
	return EmittedFile{}
}

func TestEmitFlatLayout(t *testing.T) {
	d := descriptor(t, "selenium")
	tree, warnings, err := Emit(d, []scenario.Scenario{loginScenario()}, "demo")
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, []string{
		"requirements.txt",
		"config.py",
		"run_tests.py",
		"setup.sh",
		"setup.bat",
		"README.md",
		"test_login.py",
	}, tree.Paths())

	source := string(find(t, tree, "test_login.py").Content)
	assert.Contains(t, source, "class TestLogin:")
	assert.Contains(t, source, "def setup_method(self):")
	assert.Contains(t, source, "def teardown_method(self):")
	assert.Contains(t, source, "def test_login(self):")
	assert.Contains(t, source, "self.driver.get('https://example.com')")
	assert.Contains(t, source, "element.send_keys('alice')")
	assert.Contains(t, source, "assert True")

	// Four executable action lines in order.
	var actions []string
	for _, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "self.driver.get") ||
			strings.HasPrefix(trimmed, "element.click") ||
			strings.HasPrefix(trimmed, "element.send_keys") {
			actions = append(actions, trimmed)
		}
	}
	assert.Equal(t, []string{
		"self.driver.get('https://example.com')",
		"element.click()",
		"element.send_keys('alice')",
		"element.click()",
	}, actions)

	manifest := string(find(t, tree, "requirements.txt").Content)
	assert.Equal(t, strings.Join(d.Dependencies, "\n")+"\n", manifest)

	assert.True(t, find(t, tree, "setup.sh").Executable)
	assert.False(t, find(t, tree, "setup.bat").Executable)
	assert.True(t, find(t, tree, "run_tests.py").Executable)
}

func TestEmitBuildSystemLayout(t *testing.T) {
	d := descriptor(t, "selenium-java")
	tree, _, err := Emit(d, []scenario.Scenario{loginScenario()}, "demo")
	require.NoError(t, err)

	paths := tree.Paths()
	assert.Contains(t, paths, "pom.xml")
	assert.Contains(t, paths, "testng.xml")
	assert.Contains(t, paths, "src/test/java/com/testforge/generated/TestLogin.java")
	assert.Contains(t, paths, "src/test/java/com/testforge/generated/TestConfig.java")

	source := string(find(t, tree, "src/test/java/com/testforge/generated/TestLogin.java").Content)
	assert.Contains(t, source, "package com.testforge.generated;")
	assert.Contains(t, source, "public class TestLogin {")
	assert.Contains(t, source, "@BeforeMethod")
	assert.Contains(t, source, "@AfterMethod")
	assert.Contains(t, source, "driver.get(\"https://example.com\");")
	assert.Contains(t, source, "Assert.assertTrue(true);")

	pom := string(find(t, tree, "pom.xml").Content)
	assert.Contains(t, pom, "<artifactId>selenium-java</artifactId>")
	assert.Contains(t, pom, "<artifactId>demo</artifactId>")

	suite := string(find(t, tree, "testng.xml").Content)
	assert.Contains(t, suite, "com.testforge.generated.TestLogin")
}

func TestEmitCypress(t *testing.T) {
	d := descriptor(t, "cypress")
	tree, _, err := Emit(d, []scenario.Scenario{loginScenario()}, "demo")
	require.NoError(t, err)

	source := string(find(t, tree, "test_login.cy.js").Content)
	assert.Contains(t, source, "describe('Login', () => {")
	assert.Contains(t, source, "cy.visit('https://example.com')")
	assert.Contains(t, source, "expect(true).to.be.true")

	config := string(find(t, tree, "cypress.config.js").Content)
	assert.Contains(t, config, "specPattern: 'test_*.cy.js'")
}

func TestEmitDeterminism(t *testing.T) {
	d := descriptor(t, "selenium")
	scenarios := []scenario.Scenario{loginScenario()}

	first, _, err := Emit(d, scenarios, "demo")
	require.NoError(t, err)
	second, _, err := Emit(d, scenarios, "demo")
	require.NoError(t, err)

	require.Equal(t, first.Paths(), second.Paths())
	for i := range first.Files {
		assert.Equal(t, first.Files[i].Content, second.Files[i].Content, "content of %s differs between runs", first.Files[i].Path)
	}
}

func TestEmitNameCollision(t *testing.T) {
	a := loginScenario()
	b := loginScenario()
	b.ID = "LOGIN_step_2"

	tree, warnings, err := Emit(descriptor(t, "selenium"), []scenario.Scenario{a, b}, "demo")
	require.NoError(t, err)

	assert.Contains(t, tree.Paths(), "test_login.py")
	assert.Contains(t, tree.Paths(), "test_login_step_2.py")

	// Both scenarios share the name Login, so the second class is suffixed.
	source := string(find(t, tree, "test_login_step_2.py").Content)
	assert.Contains(t, source, "class TestLogin2:")
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "TestLogin2")
}

func TestEmitUnknownActionKeepsAssertion(t *testing.T) {
	sc := loginScenario()
	sc.Steps = []scenario.Step{
		{Index: 1, Action: scenario.Action{Kind: scenario.ActionUnknown, Raw: "levitate"}},
	}

	tree, _, err := Emit(descriptor(t, "selenium"), []scenario.Scenario{sc}, "demo")
	require.NoError(t, err)

	source := string(find(t, tree, "test_login.py").Content)
	assert.Contains(t, source, "# TODO: levitate")
	assert.Contains(t, source, "assert True")
}

func TestTreeWrite(t *testing.T) {
	dir := t.TempDir()
	tree, _, err := Emit(descriptor(t, "selenium"), []scenario.Scenario{loginScenario()}, "demo")
	require.NoError(t, err)

	root := filepath.Join(dir, "demo")
	require.NoError(t, tree.Write(root))

	for _, f := range tree.Files {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(f.Path)))
		require.NoError(t, err)
		if f.Executable {
			assert.NotZero(t, info.Mode()&0o100, "%s should be executable", f.Path)
		}
	}
}

func TestClassName(t *testing.T) {
	cases := map[string]string{
		"Login":           "TestLogin",
		"LOGIN":           "TestLogin",
		"User Login":      "TestUserLogin",
		"user login!":     "TestUserLogin",
		"2FA check":       "Test2faCheck",
		"  spaced  out  ": "TestSpacedOut",
	}
	for in, want := range cases {
		assert.Equal(t, want, className(in), "name %q", in)
	}
}

func TestFileBase(t *testing.T) {
	assert.Equal(t, "tc001", fileBase("TC001"))
	assert.Equal(t, "tc001_step_2", fileBase("TC001_step_2"))
	assert.Equal(t, "tc_1", fileBase("TC-1"))
	assert.Equal(t, "t2fa", fileBase("2FA"))
	assert.Equal(t, "scenario", fileBase(""))
}
