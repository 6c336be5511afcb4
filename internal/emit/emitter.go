package emit

import (
	"fmt"
	"path"

	"github.com/lance13c/testforge/internal/framework"
	"github.com/lance13c/testforge/internal/lower"
	"github.com/lance13c/testforge/internal/scenario"
)

// Emit renders the complete project tree for one compilation: the fixed
// overhead files in declared order, then one source file per scenario in
// scenario order. It performs no I/O; Write on the returned tree persists
// it.
func Emit(d *framework.Descriptor, scenarios []scenario.Scenario, projectName string) (*ProjectTree, []string, error) {
	tree := &ProjectTree{
		ProjectName: projectName,
		Framework:   d.ID,
		TestCount:   len(scenarios),
	}
	var warnings []string

	names := newUniqueNames()
	type rendered struct {
		sc    scenario.Scenario
		class string
		path  string
	}
	sources := make([]rendered, 0, len(scenarios))
	classes := make([]string, 0, len(scenarios))

	for _, sc := range scenarios {
		base := className(sc.Name)
		class, renamed := names.class(base)
		if renamed {
			warnings = append(warnings, fmt.Sprintf("scenario %s: class name %s already taken, using %s", sc.ID, base, class))
		}

		var filePath string
		if d.Language.Typed() {
			filePath = path.Join(d.Layout.TestDir, class+d.Layout.FileExt)
		} else {
			stem, stemRenamed := names.file(d.Layout.FilePrefix + fileBase(sc.ID))
			if stemRenamed {
				warnings = append(warnings, fmt.Sprintf("scenario %s: file name collision resolved as %s%s", sc.ID, stem, d.Layout.FileExt))
			}
			filePath = stem + d.Layout.FileExt
		}

		sources = append(sources, rendered{sc: sc, class: class, path: filePath})
		classes = append(classes, class)
	}

	// Overhead files, fixed order.
	if err := tree.add(d.Layout.ManifestPath, renderManifest(d), false); err != nil {
		return nil, nil, err
	}
	if err := tree.add(d.Layout.ConfigPath, renderConfig(d), false); err != nil {
		return nil, nil, err
	}
	if d.Layout.BuildPath != "" {
		if err := tree.add(d.Layout.BuildPath, renderPOM(d, projectName), false); err != nil {
			return nil, nil, err
		}
		if err := tree.add(d.Layout.SuitePath, renderSuite(d, projectName, classes), false); err != nil {
			return nil, nil, err
		}
	}
	if err := tree.add(d.Layout.RunnerPath, renderRunner(d, projectName), true); err != nil {
		return nil, nil, err
	}
	if err := tree.add("setup.sh", renderSetupPOSIX(d), true); err != nil {
		return nil, nil, err
	}
	if err := tree.add("setup.bat", renderSetupWindows(d), false); err != nil {
		return nil, nil, err
	}
	if err := tree.add("README.md", renderReadme(d, projectName, len(scenarios)), false); err != nil {
		return nil, nil, err
	}

	// Per-scenario sources, scenario order.
	for _, src := range sources {
		trees, lowerWarnings := lower.Scenario(d, src.sc)
		warnings = append(warnings, lowerWarnings...)

		content := renderSource(d, src.sc, src.class, trees)
		if err := tree.add(src.path, content, false); err != nil {
			return nil, nil, err
		}
	}

	return tree, warnings, nil
}
