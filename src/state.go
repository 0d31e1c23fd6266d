package src

import (
	"time"

	"github.com/google/uuid"
)

// Stage is one step of the generation pipeline's fixed forward sequence.
// Stages only ever advance; a state never moves backwards.
type Stage int

const (
	StageStart Stage = iota
	StageIntentParsed
	StageLayoutPlanned
	StageCodeGenerated
	StageAccessibilityReviewed
	StageUIReviewed
	StageComplete
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageIntentParsed:
		return "intent_parsed"
	case StageLayoutPlanned:
		return "layout_planned"
	case StageCodeGenerated:
		return "code_generated"
	case StageAccessibilityReviewed:
		return "accessibility_reviewed"
	case StageUIReviewed:
		return "ui_reviewed"
	case StageComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// ContainerKind is the root layout container of a generated screen.
type ContainerKind string

const (
	ContainerColumn     ContainerKind = "Column"
	ContainerRow        ContainerKind = "Row"
	ContainerCard       ContainerKind = "Card"
	ContainerBox        ContainerKind = "Box"
	ContainerLazyColumn ContainerKind = "LazyColumn"
	ContainerLazyRow    ContainerKind = "LazyRow"
)

// UIElement is one component the user asked for, as understood by intent
// parsing. Content carries the visible text for Text/Button kinds and the
// description for Image kinds.
type UIElement struct {
	Kind    string            `json:"type"`
	Content string            `json:"content"`
	Text    string            `json:"text,omitempty"`
	Style   string            `json:"style"`
	Attrs   map[string]string `json:"attributes,omitempty"`
}

// Label returns the element's visible text, whichever of the two aliased
// fields the intent parser populated.
func (e UIElement) Label() string {
	if e.Content != "" {
		return e.Content
	}
	return e.Text
}

// Intent is the structured result of parsing the user's description.
// Actions is a list, matching the parser prompt's example output.
type Intent struct {
	Elements []UIElement       `json:"ui_elements"`
	Layout   ContainerKind     `json:"layout_type"`
	Styles   map[string]string `json:"styles,omitempty"`
	Actions  []string          `json:"actions,omitempty"`
}

// PlanChild pairs an intent element with the modifiers the layout planner
// assigned to it.
type PlanChild struct {
	Component  UIElement
	Properties map[string]string
	Modifiers  []string
}

// LayoutPlan is the planner's output. Children preserves the order of the
// intent's elements one-to-one.
type LayoutPlan struct {
	Root        ContainerKind
	Children    []PlanChild
	Modifiers   []string
	Arrangement string
}

// ProjectComponent is a composable already present in the target project.
type ProjectComponent struct {
	Name string
	File string
}

// ProjectStructure summarizes an existing Android project on disk.
type ProjectStructure struct {
	Components  []ProjectComponent
	HasManifest bool
}

// ComposeExample is one reference snippet fetched by the example search.
type ComposeExample struct {
	Code        string
	Description string
	Path        string
	SourceURL   string
}

// PipelineState is the single record threaded through every pipeline stage.
// One state is created per generation request, flows forward exactly once,
// and is discarded after the report is read out.
type PipelineState struct {
	UserInput string

	ParsedIntent *Intent
	LayoutPlan   *LayoutPlan

	GeneratedCode string

	AccessibilityFindings []string
	DesignFindings        []string

	FinalReport string

	CurrentStage Stage

	// Context extras. These gate behavior inside stages without altering
	// the stage sequence.
	Examples           []ComposeExample
	ExistingComponents []ProjectComponent
	MultiFile          bool
	ValidateRequested  bool
}

// NewPipelineState creates the initial state for one generation request.
func NewPipelineState(userInput string) *PipelineState {
	return &PipelineState{
		UserInput:    userInput,
		CurrentStage: StageStart,
	}
}

// advance moves the state to the given stage. Regressions are ignored so a
// stage can never rewind an already-advanced state.
func (s *PipelineState) advance(to Stage) {
	if to > s.CurrentStage {
		s.CurrentStage = to
	}
}

// IterationRecord is one snapshot in the session's refinement history.
// Records are append-only and never mutated after creation.
type IterationRecord struct {
	Sequence      int
	ID            string
	Timestamp     time.Time
	Description   string
	Code          string
	Accessibility string
	Design        string
	Feedback      string
}

// History holds the per-session iteration records. It is owned by one
// front-end session and is not safe for concurrent use; the TUI drives it
// from a single goroutine.
type History struct {
	records []IterationRecord
}

// Append adds one record, assigning the next sequence number and a fresh ID.
func (h *History) Append(rec IterationRecord) IterationRecord {
	rec.Sequence = h.NextSequence()
	rec.ID = uuid.NewString()
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}
	h.records = append(h.records, rec)
	return rec
}

// NextSequence returns priorMax + 1, starting at 1 for an empty history.
func (h *History) NextSequence() int {
	max := 0
	for _, r := range h.records {
		if r.Sequence > max {
			max = r.Sequence
		}
	}
	return max + 1
}

// Latest returns the most recent record, or false when the history is empty.
func (h *History) Latest() (IterationRecord, bool) {
	if len(h.records) == 0 {
		return IterationRecord{}, false
	}
	return h.records[len(h.records)-1], true
}

// Records returns a copy of the history in append order.
func (h *History) Records() []IterationRecord {
	out := make([]IterationRecord, len(h.records))
	copy(out, h.records)
	return out
}

// Len reports the number of records.
func (h *History) Len() int { return len(h.records) }

// Reset clears the history. The next record starts again at sequence 1.
func (h *History) Reset() { h.records = nil }

// LintSeverity classifies a static-validation finding.
type LintSeverity string

const (
	SeverityError   LintSeverity = "error"
	SeverityWarning LintSeverity = "warning"
	SeverityInfo    LintSeverity = "info"
)

// LintFinding is a single validation observation. Purely descriptive; the
// auto-fixer owns remediation.
type LintFinding struct {
	Severity   LintSeverity
	Message    string
	Line       int
	Suggestion string
}

// CompilationOutcome is the result of a best-effort compilation check.
type CompilationOutcome struct {
	Success  bool
	Errors   []string
	Warnings []string
}

// RefinementResult is the structured output of one refinement call.
type RefinementResult struct {
	Code               string
	Changes            []string
	AccessibilityNotes []string
	DesignNotes        []string
}
