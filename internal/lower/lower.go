// Package lower translates normalized scenario steps into framework
// specific action nodes. Lowering is a pure, total function: every step
// produces at least one node, falling back to commented placeholders where
// the target has no executable rendering.
package lower

import (
	"fmt"
	"strconv"

	"github.com/lance13c/testforge/internal/framework"
	"github.com/lance13c/testforge/internal/scenario"
)

// NodeKind separates executable lines from commentary.
type NodeKind int

const (
	NodeCode NodeKind = iota
	NodeComment
)

// ActionNode is one line of the abstract action tree: either executable
// code in the target language or a comment the emitter prefixes with the
// framework's comment token.
type ActionNode struct {
	Kind NodeKind
	Text string
}

func code(text string) ActionNode    { return ActionNode{Kind: NodeCode, Text: text} }
func comment(text string) ActionNode { return ActionNode{Kind: NodeComment, Text: text} }

// Step lowers one step for one framework. The returned warnings cover
// locator-vocabulary fallbacks; structural problems (missing locators or
// data) were already reported by the normalizer.
func Step(d *framework.Descriptor, step scenario.Step) ([]ActionNode, []string) {
	var nodes []ActionNode
	var warnings []string

	tpl := d.Templates

	switch step.Action.Kind {
	case scenario.ActionOpen:
		switch d.Kind {
		case scenario.KindMobile:
			nodes = append(nodes, comment(tpl.OpenNoop))
		case scenario.KindAPI:
			nodes = append(nodes, code(fmt.Sprintf(tpl.Get, step.Datum)))
			nodes = append(nodes, code(tpl.AssertStatus))
		default:
			nodes = append(nodes, code(fmt.Sprintf(tpl.Navigate, step.Datum)))
		}

	case scenario.ActionClick:
		nodes, warnings = locate(d, step, nodes, warnings, "click")
		if len(nodes) > 0 && nodes[len(nodes)-1].Kind == NodeCode {
			nodes = append(nodes, code(tpl.Click))
		}

	case scenario.ActionType:
		nodes, warnings = locate(d, step, nodes, warnings, "type")
		if len(nodes) > 0 && nodes[len(nodes)-1].Kind == NodeCode {
			nodes = append(nodes, code(tpl.Clear))
			nodes = append(nodes, code(fmt.Sprintf(tpl.Type, step.Datum)))
		}

	case scenario.ActionWait:
		nodes = append(nodes, code(fmt.Sprintf(tpl.Sleep, waitSeconds(d, step))))

	case scenario.ActionSelect:
		// Select renders like click; picking the dropdown option is left
		// as a follow-up carrying the unused datum.
		nodes, warnings = locate(d, step, nodes, warnings, "select")
		if len(nodes) > 0 && nodes[len(nodes)-1].Kind == NodeCode {
			nodes = append(nodes, code(tpl.Click))
			nodes = append(nodes, comment(fmt.Sprintf("TODO: select option '%s' from the dropdown", step.Datum)))
		}

	case scenario.ActionUnknown:
		nodes = append(nodes, comment(fmt.Sprintf("TODO: %s", step.Action.Raw)))

	default: // ActionNone
		if step.Description != "" {
			nodes = append(nodes, comment(step.Description))
		} else {
			nodes = append(nodes, comment("TODO: step has no action"))
		}
	}

	if step.Expected != "" {
		nodes = append(nodes, comment(fmt.Sprintf("expected: %s", step.Expected)))
	}

	return nodes, warnings
}

// locate emits the element-lookup node for locator-bearing actions, or a
// commented placeholder when the target cannot locate elements or the step
// carries no locator.
func locate(d *framework.Descriptor, step scenario.Step, nodes []ActionNode, warnings []string, verb string) ([]ActionNode, []string) {
	if d.Kind == scenario.KindAPI {
		nodes = append(nodes, comment(fmt.Sprintf("TODO: %s step is not supported for API tests", verb)))
		return nodes, warnings
	}
	if step.Locator.Empty() {
		nodes = append(nodes, comment(fmt.Sprintf("TODO: missing locator for %s step", verb)))
		return nodes, warnings
	}

	expr, ok := d.Locator(step.Locator)
	if !ok {
		warnings = append(warnings, fmt.Sprintf("step %d: %s has no %s locator vocabulary, falling back to id", step.Index, d.ID, step.Locator.Strategy))
	}
	nodes = append(nodes, code(fmt.Sprintf(d.Templates.Find, expr)))
	return nodes, warnings
}

// waitSeconds picks the bounded-wait duration: a positive integer datum
// wins, otherwise the framework default applies.
func waitSeconds(d *framework.Descriptor, step scenario.Step) int {
	if parsed, err := strconv.Atoi(step.Datum); err == nil && parsed > 0 {
		return parsed
	}
	return d.WaitSeconds
}

// Scenario lowers every step of a scenario in order.
func Scenario(d *framework.Descriptor, sc scenario.Scenario) ([][]ActionNode, []string) {
	trees := make([][]ActionNode, 0, len(sc.Steps))
	var warnings []string
	for _, step := range sc.Steps {
		nodes, stepWarnings := Step(d, step)
		trees = append(trees, nodes)
		warnings = append(warnings, stepWarnings...)
	}
	return trees, warnings
}
