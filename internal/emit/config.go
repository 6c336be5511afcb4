package emit

import (
	"fmt"
	"strings"

	"github.com/lance13c/testforge/internal/framework"
)

// renderConfig produces the configuration artifact: a key-value module for
// dynamic targets, a constants class for typed ones.
func renderConfig(d *framework.Descriptor) string {
	switch d.Language {
	case framework.LangJava:
		return renderJavaConfig(d)
	case framework.LangJavaScript:
		return renderCypressConfig(d)
	default:
		return renderPythonConfig(d)
	}
}

func renderPythonConfig(d *framework.Descriptor) string {
	var b strings.Builder

	b.WriteString("# Test configuration\n")
	fmt.Fprintf(&b, "# Framework: %s\n\n", d.DisplayName)

	b.WriteString("IMPLICIT_WAIT = 10\n")
	b.WriteString("EXPLICIT_WAIT = 10\n")
	b.WriteString("PAGE_LOAD_TIMEOUT = 30\n\n")

	b.WriteString("BROWSER = 'chrome'\n")
	b.WriteString("HEADLESS = False\n\n")

	b.WriteString("APPIUM_SERVER = 'http://localhost:4723/wd/hub'\n")
	b.WriteString("ANDROID_CAPS = {\n")
	b.WriteString("    'platformName': 'Android',\n")
	b.WriteString("    'platformVersion': '11.0',\n")
	b.WriteString("    'deviceName': 'Android Emulator',\n")
	b.WriteString("    'automationName': 'UiAutomator2',\n")
	b.WriteString("    'app': 'path/to/your/app.apk',\n")
	b.WriteString("}\n\n")

	b.WriteString("BASE_URL = 'https://api.example.com'\n")
	b.WriteString("API_TIMEOUT = 30\n\n")

	b.WriteString("TEST_DATA = {\n")
	b.WriteString("    'valid_user': {'email': 'test@example.com', 'password': '123456'},\n")
	b.WriteString("    'invalid_user': {'email': 'invalid@example.com', 'password': 'wrong'},\n")
	b.WriteString("}\n\n")

	b.WriteString("REPORT_DIR = 'reports'\n")
	b.WriteString("SCREENSHOT_DIR = 'screenshots'\n")

	return b.String()
}

func renderJavaConfig(d *framework.Descriptor) string {
	var b strings.Builder

	fmt.Fprintf(&b, "package %s;\n\n", d.Layout.PackagePath)
	for _, line := range d.ConfigImports {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if len(d.ConfigImports) > 0 {
		b.WriteByte('\n')
	}

	b.WriteString("/**\n * Test configuration defaults.\n */\n")
	b.WriteString("public final class TestConfig {\n\n")

	b.WriteString("    public static final int IMPLICIT_WAIT = 10;\n")
	b.WriteString("    public static final int EXPLICIT_WAIT = 10;\n")
	b.WriteString("    public static final int PAGE_LOAD_TIMEOUT = 30;\n\n")

	b.WriteString("    public static final String BROWSER = \"chrome\";\n")
	b.WriteString("    public static final boolean HEADLESS = false;\n\n")

	b.WriteString("    public static final String APPIUM_SERVER = \"http://localhost:4723/wd/hub\";\n")
	b.WriteString("    public static final String BASE_URL = \"https://api.example.com\";\n")
	b.WriteString("    public static final int API_TIMEOUT = 30;\n\n")

	b.WriteString("    public static final String REPORT_DIR = \"reports\";\n")
	b.WriteString("    public static final String SCREENSHOT_DIR = \"screenshots\";\n\n")

	b.WriteString("    private TestConfig() {\n    }\n")

	if len(d.ConfigExtras) > 0 {
		b.WriteByte('\n')
		for _, line := range d.ConfigExtras {
			if line == "" {
				b.WriteByte('\n')
				continue
			}
			b.WriteString("    " + line + "\n")
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func renderCypressConfig(d *framework.Descriptor) string {
	var b strings.Builder

	b.WriteString("const { defineConfig } = require('cypress')\n\n")
	b.WriteString("module.exports = defineConfig({\n")
	b.WriteString("  e2e: {\n")
	fmt.Fprintf(&b, "    specPattern: '%s*%s',\n", d.Layout.FilePrefix, d.Layout.FileExt)
	b.WriteString("    supportFile: false,\n")
	b.WriteString("    defaultCommandTimeout: 10000,\n")
	b.WriteString("    pageLoadTimeout: 30000,\n")
	b.WriteString("    video: false,\n")
	b.WriteString("    screenshotsFolder: 'screenshots',\n")
	b.WriteString("  },\n")
	b.WriteString("  reporter: 'mocha-junit-reporter',\n")
	b.WriteString("  reporterOptions: {\n")
	b.WriteString("    mochaFile: 'reports/report-[hash].xml',\n")
	b.WriteString("  },\n")
	b.WriteString("})\n")

	return b.String()
}
