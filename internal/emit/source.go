package emit

import (
	"fmt"
	"strings"

	"github.com/lance13c/testforge/internal/framework"
	"github.com/lance13c/testforge/internal/lower"
	"github.com/lance13c/testforge/internal/scenario"
)

// renderSource produces one per-scenario source file in the target
// language: import block, Test class, setup/teardown from the framework
// idioms, and one test method whose body is the rendered action tree
// followed by a terminal positive assertion.
func renderSource(d *framework.Descriptor, sc scenario.Scenario, class string, trees [][]lower.ActionNode) string {
	switch d.Language {
	case framework.LangJava:
		return renderJavaSource(d, sc, class, trees)
	case framework.LangJavaScript:
		return renderJSSource(d, sc, class, trees)
	default:
		return renderPythonSource(d, sc, class, trees)
	}
}

// renderLine turns an action node into source text, prefixing comments with
// the framework's comment token.
func renderLine(d *framework.Descriptor, node lower.ActionNode) string {
	if node.Kind == lower.NodeComment {
		return d.Templates.Comment + " " + node.Text
	}
	return node.Text
}

func renderPythonSource(d *framework.Descriptor, sc scenario.Scenario, class string, trees [][]lower.ActionNode) string {
	var b strings.Builder

	for _, line := range d.Imports {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	doc := sc.Description
	if doc == "" {
		doc = sc.Name
	}

	fmt.Fprintf(&b, "\n\nclass %s:\n", class)
	fmt.Fprintf(&b, "    \"\"\"%s\"\"\"\n\n", doc)

	b.WriteString("    def setup_method(self):\n")
	b.WriteString("        \"\"\"Runs before every test\"\"\"\n")
	for _, line := range d.Setup {
		b.WriteString("        " + line + "\n")
	}

	b.WriteString("\n    def teardown_method(self):\n")
	b.WriteString("        \"\"\"Runs after every test\"\"\"\n")
	for _, line := range d.Teardown {
		b.WriteString("        " + line + "\n")
	}

	method := fileBase(sc.ID)
	fmt.Fprintf(&b, "\n    def test_%s(self):\n", method)
	fmt.Fprintf(&b, "        \"\"\"%s\"\"\"\n", doc)

	body := "        "
	hasGuard := d.ScreenshotOnError != ""
	if hasGuard {
		b.WriteString("        try:\n")
		body = "            "
	}

	for _, tree := range trees {
		for _, node := range tree {
			b.WriteString(body + renderLine(d, node) + "\n")
		}
	}
	b.WriteString(body + d.Templates.Comment + " Test passed\n")
	b.WriteString(body + "assert True\n")

	if hasGuard {
		b.WriteString("        except Exception:\n")
		fmt.Fprintf(&b, "            "+d.ScreenshotOnError+"\n", method)
		b.WriteString("            raise\n")
	}

	return b.String()
}

func renderJavaSource(d *framework.Descriptor, sc scenario.Scenario, class string, trees [][]lower.ActionNode) string {
	var b strings.Builder

	fmt.Fprintf(&b, "package %s;\n\n", d.Layout.PackagePath)
	for _, line := range d.Imports {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	doc := sc.Description
	if doc == "" {
		doc = sc.Name
	}

	fmt.Fprintf(&b, "\n/**\n * %s\n */\n", doc)
	fmt.Fprintf(&b, "public class %s {\n\n", class)

	for _, field := range d.Fields {
		b.WriteString("    " + field + "\n")
	}
	if len(d.Fields) > 0 {
		b.WriteByte('\n')
	}

	b.WriteString("    @BeforeMethod\n")
	b.WriteString("    public void setUp() throws Exception {\n")
	for _, line := range d.Setup {
		b.WriteString("        " + line + "\n")
	}
	b.WriteString("    }\n\n")

	b.WriteString("    @AfterMethod\n")
	b.WriteString("    public void tearDown() {\n")
	for _, line := range d.Teardown {
		b.WriteString("        " + line + "\n")
	}
	b.WriteString("    }\n\n")

	b.WriteString("    @Test\n")
	fmt.Fprintf(&b, "    public void test_%s() throws Exception {\n", fileBase(sc.ID))
	for _, tree := range trees {
		for _, node := range tree {
			b.WriteString("        " + renderLine(d, node) + "\n")
		}
	}
	b.WriteString("        " + d.Templates.Comment + " Test passed\n")
	b.WriteString("        Assert.assertTrue(true);\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	return b.String()
}

func renderJSSource(d *framework.Descriptor, sc scenario.Scenario, class string, trees [][]lower.ActionNode) string {
	var b strings.Builder

	for _, line := range d.Imports {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	name := sc.Name
	if name == "" {
		name = class
	}

	fmt.Fprintf(&b, "\ndescribe('%s', () => {\n", escapeSingle(name))

	if len(d.Setup) > 0 {
		b.WriteString("  beforeEach(() => {\n")
		for _, line := range d.Setup {
			b.WriteString("    " + line + "\n")
		}
		b.WriteString("  })\n\n")
	}
	if len(d.Teardown) > 0 {
		b.WriteString("  afterEach(() => {\n")
		for _, line := range d.Teardown {
			b.WriteString("    " + line + "\n")
		}
		b.WriteString("  })\n\n")
	}

	fmt.Fprintf(&b, "  it('test_%s', () => {\n", fileBase(sc.ID))
	for _, tree := range trees {
		for _, node := range tree {
			b.WriteString("    " + renderLine(d, node) + "\n")
		}
	}
	b.WriteString("    " + d.Templates.Comment + " Test passed\n")
	b.WriteString("    expect(true).to.be.true\n")
	b.WriteString("  })\n")
	b.WriteString("})\n")

	return b.String()
}

func escapeSingle(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}
