package scenario

import (
	"fmt"
	"sort"
	"strconv"
)

// Validation is the auxiliary record produced by normalization. It never
// feeds back into the scenarios themselves; fatal errors abort the
// compilation, warnings ride along with a successful result.
type Validation struct {
	Errors   []string
	Warnings []string
	Counts   Counts
}

// Counts summarizes a normalization pass.
type Counts struct {
	Scenarios             int
	Steps                 int
	ScenariosWithErrors   int
	ScenariosWithWarnings int
}

// Valid reports whether no fatal error was recorded.
func (v *Validation) Valid() bool {
	return len(v.Errors) == 0
}

func (v *Validation) errorf(format string, args ...interface{}) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}

func (v *Validation) warnf(format string, args ...interface{}) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}

// Normalize groups raw rows into scenarios and validates them.
//
// Rows are clustered by consecutive ScenarioKey: when a key reappears after
// other keys intervened, the later cluster becomes its own scenario with a
// synthetic id of the form key_step_N, preserving the original key on the
// scenario. Within a cluster, steps are ordered by their declared StepIndex
// with source order breaking ties, then reindexed densely from 1.
func Normalize(rows []Row) ([]Scenario, *Validation) {
	validation := &Validation{}

	clusters := clusterRows(rows)
	scenarios := make([]Scenario, 0, len(clusters))
	usedIDs := make(map[string]bool, len(clusters))

	for _, cluster := range clusters {
		first := cluster[0]
		key := first.Get(ColScenarioKey)

		sc := Scenario{
			ID:          key,
			Key:         key,
			Name:        first.Get(ColScenarioName),
			Description: first.Get(ColScenarioDescription),
		}

		priority, ok := ResolvePriority(first.Get(ColPriority))
		if !ok {
			validation.warnf("scenario %s: unknown priority %q, using medium", key, first.Get(ColPriority))
		}
		sc.Priority = priority

		kind, ok := ResolveTestKind(first.Get(ColTestKind))
		if !ok {
			validation.warnf("scenario %s: unknown test kind %q, using web", key, first.Get(ColTestKind))
		}
		sc.Kind = kind

		if usedIDs[sc.ID] {
			synthetic := syntheticID(key, first, usedIDs)
			validation.warnf("scenario key %s repeats in a later cluster (line %d), renamed to %s", key, first.Line, synthetic)
			sc.ID = synthetic
		}
		usedIDs[sc.ID] = true

		sc.Steps = buildSteps(cluster)
		scenarios = append(scenarios, sc)
	}

	validate(scenarios, validation)
	return scenarios, validation
}

// clusterRows splits rows into maximal runs sharing one ScenarioKey.
func clusterRows(rows []Row) [][]Row {
	var clusters [][]Row
	var current []Row
	currentKey := ""

	for _, row := range rows {
		key := row.Get(ColScenarioKey)
		if key == "" {
			continue // the ingestor already warned about these
		}
		if len(current) > 0 && key != currentKey {
			clusters = append(clusters, current)
			current = nil
		}
		currentKey = key
		current = append(current, row)
	}
	if len(current) > 0 {
		clusters = append(clusters, current)
	}
	return clusters
}

// syntheticID derives a collision-free id for a repeated key, suffixing the
// cluster's leading step index and bumping it until the id is unused.
func syntheticID(key string, first Row, used map[string]bool) string {
	n := 1
	if parsed, err := strconv.Atoi(first.Get(ColStepIndex)); err == nil && parsed > 0 {
		n = parsed
	}
	candidate := fmt.Sprintf("%s_step_%d", key, n)
	for used[candidate] {
		n++
		candidate = fmt.Sprintf("%s_step_%d", key, n)
	}
	return candidate
}

// buildSteps converts a cluster's rows into ordered, densely indexed steps.
func buildSteps(cluster []Row) []Step {
	steps := make([]Step, 0, len(cluster))
	for position, row := range cluster {
		declared := position + 1 // default by source order
		if parsed, err := strconv.Atoi(row.Get(ColStepIndex)); err == nil && parsed >= 1 {
			declared = parsed
		}

		steps = append(steps, Step{
			Index:       declared,
			Description: row.Get(ColStepDescription),
			Locator: LocatorRef{
				Strategy: ResolveStrategy(row.Get(ColLocatorStrategy)),
				Value:    row.Get(ColLocatorValue),
			},
			Action:   ResolveAction(row.Get(ColActionToken)),
			Datum:    row.Get(ColInputDatum),
			Expected: row.Get(ColExpectedOutcome),
			Line:     row.Line,
		})
	}

	// Declared index orders the steps; source order breaks ties.
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].Index < steps[j].Index
	})
	for i := range steps {
		steps[i].Index = i + 1
	}
	return steps
}

// validate records fatal errors and warnings for each scenario.
func validate(scenarios []Scenario, validation *Validation) {
	validation.Counts.Scenarios = len(scenarios)

	for _, sc := range scenarios {
		errsBefore := len(validation.Errors)
		warnsBefore := len(validation.Warnings)

		if sc.Name == "" {
			validation.errorf("scenario %s: name is missing", sc.ID)
		}
		if len(sc.Steps) == 0 {
			validation.errorf("scenario %s: has no steps", sc.ID)
		}

		for _, step := range sc.Steps {
			validation.Counts.Steps++

			if step.Action.Kind == ActionUnknown {
				validation.warnf("scenario %s step %d: unknown action token %q", sc.ID, step.Index, step.Action.Raw)
			}
			if step.Action.Kind.NeedsLocator() && step.Locator.Empty() {
				validation.warnf("scenario %s step %d: %s action has no locator", sc.ID, step.Index, step.Action.Kind)
			}
			if step.Action.Kind == ActionType && step.Datum == "" {
				validation.warnf("scenario %s step %d: type action has no input datum", sc.ID, step.Index)
			}
		}

		if len(validation.Errors) > errsBefore {
			validation.Counts.ScenariosWithErrors++
		}
		if len(validation.Warnings) > warnsBefore {
			validation.Counts.ScenariosWithWarnings++
		}
	}
}
