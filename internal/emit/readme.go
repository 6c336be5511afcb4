package emit

import (
	"fmt"
	"strings"

	"github.com/lance13c/testforge/internal/framework"
	"github.com/lance13c/testforge/internal/scenario"
)

// renderReadme documents the generated project: framework, test count, and
// how to run. The content is deterministic; provenance such as generation
// time is reported to the caller, never embedded here.
func renderReadme(d *framework.Descriptor, projectName string, testCount int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", projectName)
	b.WriteString("Automation project generated by testforge.\n\n")

	b.WriteString("## Project\n\n")
	fmt.Fprintf(&b, "- **Framework**: %s\n", d.DisplayName)
	fmt.Fprintf(&b, "- **Tests**: %d\n\n", testCount)

	b.WriteString("## Setup\n\n")
	b.WriteString("Run the bootstrap script once:\n\n")
	b.WriteString("```bash\n./setup.sh\n```\n\n")
	b.WriteString("On Windows use `setup.bat` instead.\n\n")

	b.WriteString("## Running tests\n\n")
	fmt.Fprintf(&b, "```bash\n./%s\n```\n\n", d.Layout.RunnerPath)
	fmt.Fprintf(&b, "The runner wraps `%s`, writes an HTML/JUnit report under `reports/`,\n", d.RunCommand)
	b.WriteString("and forwards any extra arguments to the underlying tool.\n\n")

	b.WriteString("## Layout\n\n```\n")
	fmt.Fprintf(&b, "%s/\n", projectName)
	fmt.Fprintf(&b, "├── %s\n", d.Layout.ManifestPath)
	fmt.Fprintf(&b, "├── %s\n", d.Layout.ConfigPath)
	fmt.Fprintf(&b, "├── %s\n", d.Layout.RunnerPath)
	if d.Layout.BuildPath != "" {
		fmt.Fprintf(&b, "├── %s\n", d.Layout.BuildPath)
		fmt.Fprintf(&b, "├── %s\n", d.Layout.SuitePath)
	}
	if d.Layout.TestDir != "" {
		fmt.Fprintf(&b, "├── %s/  # generated tests\n", d.Layout.TestDir)
	} else {
		fmt.Fprintf(&b, "├── %s*%s  # generated tests\n", d.Layout.FilePrefix, d.Layout.FileExt)
	}
	b.WriteString("└── reports/  # created by the runner\n")
	b.WriteString("```\n\n")

	b.WriteString("## Notes\n\n")
	b.WriteString("- Review the configuration defaults before the first run.\n")
	if d.Kind == scenario.KindMobile {
		b.WriteString("- Mobile tests need a running Appium server and a device or emulator.\n")
	}
	if d.Kind == scenario.KindAPI {
		b.WriteString("- Point the base URL at the environment you want to exercise.\n")
	}

	return b.String()
}
