package emit

import (
	"fmt"
	"strings"

	"github.com/lance13c/testforge/internal/framework"
)

// renderManifest lists the framework's pinned dependencies, one per line.
func renderManifest(d *framework.Descriptor) string {
	return strings.Join(d.Dependencies, "\n") + "\n"
}

// renderPOM produces the Maven build descriptor for Java targets. The
// dependency entries come verbatim from the capability record, split on
// the group:artifact:version convention.
func renderPOM(d *framework.Descriptor, projectName string) string {
	var b strings.Builder

	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<project xmlns=\"http://maven.apache.org/POM/4.0.0\"\n")
	b.WriteString("         xmlns:xsi=\"http://www.w3.org/2001/XMLSchema-instance\"\n")
	b.WriteString("         xsi:schemaLocation=\"http://maven.apache.org/POM/4.0.0 http://maven.apache.org/xsd/maven-4.0.0.xsd\">\n")
	b.WriteString("    <modelVersion>4.0.0</modelVersion>\n\n")

	b.WriteString("    <groupId>com.testforge</groupId>\n")
	fmt.Fprintf(&b, "    <artifactId>%s</artifactId>\n", fileBase(projectName))
	b.WriteString("    <version>1.0.0</version>\n")
	b.WriteString("    <packaging>jar</packaging>\n\n")

	b.WriteString("    <properties>\n")
	b.WriteString("        <maven.compiler.source>17</maven.compiler.source>\n")
	b.WriteString("        <maven.compiler.target>17</maven.compiler.target>\n")
	b.WriteString("        <project.build.sourceEncoding>UTF-8</project.build.sourceEncoding>\n")
	b.WriteString("    </properties>\n\n")

	b.WriteString("    <dependencies>\n")
	for _, dep := range d.Dependencies {
		parts := strings.SplitN(dep, ":", 3)
		if len(parts) != 3 {
			continue
		}
		b.WriteString("        <dependency>\n")
		fmt.Fprintf(&b, "            <groupId>%s</groupId>\n", parts[0])
		fmt.Fprintf(&b, "            <artifactId>%s</artifactId>\n", parts[1])
		fmt.Fprintf(&b, "            <version>%s</version>\n", parts[2])
		b.WriteString("            <scope>test</scope>\n")
		b.WriteString("        </dependency>\n")
	}
	b.WriteString("    </dependencies>\n\n")

	b.WriteString("    <build>\n")
	b.WriteString("        <plugins>\n")
	b.WriteString("            <plugin>\n")
	b.WriteString("                <groupId>org.apache.maven.plugins</groupId>\n")
	b.WriteString("                <artifactId>maven-surefire-plugin</artifactId>\n")
	b.WriteString("                <version>3.2.2</version>\n")
	b.WriteString("                <configuration>\n")
	b.WriteString("                    <suiteXmlFiles>\n")
	fmt.Fprintf(&b, "                        <suiteXmlFile>%s</suiteXmlFile>\n", d.Layout.SuitePath)
	b.WriteString("                    </suiteXmlFiles>\n")
	b.WriteString("                </configuration>\n")
	b.WriteString("            </plugin>\n")
	b.WriteString("        </plugins>\n")
	b.WriteString("    </build>\n")
	b.WriteString("</project>\n")

	return b.String()
}

// renderSuite produces the TestNG suite descriptor listing every generated
// class in scenario order.
func renderSuite(d *framework.Descriptor, projectName string, classes []string) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE suite SYSTEM \"https://testng.org/testng-1.0.dtd\">\n")
	fmt.Fprintf(&b, "<suite name=\"%s\" verbose=\"2\">\n", projectName)
	b.WriteString("    <test name=\"Generated Tests\">\n")
	b.WriteString("        <classes>\n")
	for _, class := range classes {
		fmt.Fprintf(&b, "            <class name=\"%s.%s\"/>\n", d.Layout.PackagePath, class)
	}
	b.WriteString("        </classes>\n")
	b.WriteString("    </test>\n")
	b.WriteString("</suite>\n")

	return b.String()
}
