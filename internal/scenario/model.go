package scenario

// Column names recognized in a tabular scenario source. Additional columns
// are ignored by the ingestor; missing optional columns default to empty.
const (
	ColScenarioKey         = "ScenarioKey"
	ColScenarioName        = "ScenarioName"
	ColScenarioDescription = "ScenarioDescription"
	ColPriority            = "Priority"
	ColTestKind            = "TestKind"
	ColStepIndex           = "StepIndex"
	ColStepDescription     = "StepDescription"
	ColLocatorStrategy     = "LocatorStrategy"
	ColLocatorValue        = "LocatorValue"
	ColActionToken         = "ActionToken"
	ColInputDatum          = "InputDatum"
	ColExpectedOutcome     = "ExpectedOutcome"
)

// Columns lists the template column set in order.
var Columns = []string{
	ColScenarioKey,
	ColScenarioName,
	ColScenarioDescription,
	ColPriority,
	ColTestKind,
	ColStepIndex,
	ColStepDescription,
	ColLocatorStrategy,
	ColLocatorValue,
	ColActionToken,
	ColInputDatum,
	ColExpectedOutcome,
}

// Row is one non-header row of the tabular source. Cells are keyed by
// column name with values already trimmed; missing cells read as "".
type Row struct {
	Line  int // 1-based source line number
	Cells map[string]string
}

// Get returns the trimmed cell value for a column, or "" when absent.
func (r Row) Get(column string) string {
	return r.Cells[column]
}

// Priority classifies how important a scenario is.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// TestKind classifies what a scenario drives.
type TestKind string

const (
	KindWeb    TestKind = "web"
	KindMobile TestKind = "mobile"
	KindAPI    TestKind = "api"
)

// Strategy is an abstract element-location strategy. Frameworks map these
// to their own locator vocabulary.
type Strategy string

const (
	StrategyID    Strategy = "id"
	StrategyName  Strategy = "name"
	StrategyClass Strategy = "class"
	StrategyCSS   Strategy = "css"
	StrategyXPath Strategy = "xpath"
	StrategyLink  Strategy = "link"
)

// LocatorRef points at one page or screen element.
type LocatorRef struct {
	Strategy Strategy
	Value    string
}

// Empty reports whether the reference carries no locator value.
func (l LocatorRef) Empty() bool {
	return l.Value == ""
}

// ActionKind is the abstract action a step performs. Localized tokens from
// the source are resolved into these variants by the token table; the rest
// of the pipeline never sees raw tokens.
type ActionKind int

const (
	// ActionNone marks a step whose action cell was empty.
	ActionNone ActionKind = iota
	ActionOpen
	ActionClick
	ActionType
	ActionWait
	ActionSelect
	// ActionUnknown carries an unrecognized token; it lowers to a TODO.
	ActionUnknown
)

// String returns the canonical English token for the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionOpen:
		return "open"
	case ActionClick:
		return "click"
	case ActionType:
		return "type"
	case ActionWait:
		return "wait"
	case ActionSelect:
		return "select"
	case ActionUnknown:
		return "unknown"
	}
	return "none"
}

// NeedsLocator reports whether the action must target an element.
func (k ActionKind) NeedsLocator() bool {
	return k == ActionClick || k == ActionType || k == ActionSelect
}

// NeedsDatum reports whether the action consumes an input datum.
func (k ActionKind) NeedsDatum() bool {
	return k == ActionOpen || k == ActionType
}

// Action is the tagged action variant derived from a step's token. Raw
// preserves the original token text for ActionUnknown.
type Action struct {
	Kind ActionKind
	Raw  string
}

// Step is one ordered instruction inside a scenario.
type Step struct {
	Index       int // 1-based, dense within the scenario
	Description string
	Locator     LocatorRef
	Action      Action
	Datum       string
	Expected    string
	Line        int // source line the step came from
}

// Scenario is the normalized unit of compilation. It is immutable after
// normalization; the emitter and lowerer only read it.
type Scenario struct {
	ID          string // unique within a run
	Key         string // original ScenarioKey, preserved verbatim
	Name        string
	Description string
	Priority    Priority
	Kind        TestKind
	Steps       []Step
}
