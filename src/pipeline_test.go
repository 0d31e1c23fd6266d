package src

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// scriptedBackend replays canned replies keyed by substring of the system
// prompt, failing for anything unscripted.
type scriptedBackend struct {
	replies map[string]string
	calls   int
}

func (b *scriptedBackend) Invoke(ctx context.Context, system, user string) (string, error) {
	b.calls++
	for key, reply := range b.replies {
		if strings.Contains(system, key) {
			return reply, nil
		}
	}
	return "", errors.New("unscripted request")
}

// failingBackend errors on every call.
type failingBackend struct{}

func (failingBackend) Invoke(ctx context.Context, system, user string) (string, error) {
	return "", errors.New("backend down")
}

func TestPipelineAlwaysCompletes(t *testing.T) {
	p := &Pipeline{Backend: failingBackend{}}
	state := p.Generate(context.Background(), "login screen with a button")

	if state.CurrentStage != StageComplete {
		t.Fatalf("expected complete stage, got %s", state.CurrentStage)
	}
	if strings.TrimSpace(state.FinalReport) == "" {
		t.Fatalf("expected non-empty report")
	}
	if strings.TrimSpace(state.GeneratedCode) == "" {
		t.Fatalf("expected non-empty code from template fallback")
	}
}

func TestPipelineFallbackIntent(t *testing.T) {
	p := &Pipeline{Backend: failingBackend{}}
	state := p.Generate(context.Background(), "whatever")

	intent := state.ParsedIntent
	if intent == nil {
		t.Fatalf("expected fallback intent, got nil")
	}
	if len(intent.Elements) != 1 || intent.Elements[0].Content != "Error parsing intent" {
		t.Fatalf("unexpected fallback intent: %#v", intent)
	}
	if intent.Layout != ContainerColumn {
		t.Fatalf("expected Column fallback layout, got %s", intent.Layout)
	}
}

func TestPipelineParsesPromptExampleReply(t *testing.T) {
	// The exact example output the intent prompt shows the backend. A reply
	// following the contract verbatim must parse, never hit the fallback.
	reply := `{
    "ui_elements": [
        {"type": "Text", "content": "Login", "style": "headlineLarge"},
        {"type": "TextField", "content": "Email", "hint": "Enter your email"},
        {"type": "TextField", "content": "Password", "hint": "Enter your password", "secure": true},
        {"type": "Button", "text": "Login", "action": "onLogin"}
    ],
    "layout_type": "Column",
    "styles": {"spacing": "medium", "alignment": "center"},
    "actions": ["onLogin"]
}`
	b := &scriptedBackend{replies: map[string]string{"intent parser": reply}}
	p := &Pipeline{Backend: b, TemplateOnly: true}
	state := p.Generate(context.Background(), "login screen with title, email, password and a button")

	intent := state.ParsedIntent
	if intent == nil {
		t.Fatalf("expected parsed intent")
	}
	if len(intent.Elements) != 4 {
		t.Fatalf("expected 4 elements, got %d: %#v", len(intent.Elements), intent.Elements)
	}
	if intent.Elements[0].Content == "Error parsing intent" {
		t.Fatalf("contract-following reply fell back: %#v", intent)
	}
	if intent.Elements[3].Label() != "Login" {
		t.Fatalf("button label lost: %#v", intent.Elements[3])
	}
	if intent.Layout != ContainerColumn {
		t.Fatalf("unexpected layout: %s", intent.Layout)
	}
	if len(intent.Actions) != 1 || intent.Actions[0] != "onLogin" {
		t.Fatalf("actions not carried through: %v", intent.Actions)
	}
	if intent.Styles["spacing"] != "medium" {
		t.Fatalf("styles not carried through: %v", intent.Styles)
	}
}

func TestPipelineTemplateOnly(t *testing.T) {
	b := &scriptedBackend{replies: map[string]string{
		"intent parser": `{"ui_elements": [{"type": "button", "content": "Go", "style": "filled"}], "layout_type": "Column"}`,
	}}
	p := &Pipeline{Backend: b, TemplateOnly: true}
	state := p.Generate(context.Background(), "a button saying Go")

	if !strings.Contains(state.GeneratedCode, "fun GeneratedUI()") {
		t.Fatalf("expected template entry point in:\n%s", state.GeneratedCode)
	}
	if !strings.Contains(state.GeneratedCode, "Go") {
		t.Fatalf("expected button label in template output:\n%s", state.GeneratedCode)
	}
}

func TestPipelineLayoutPreservesElementOrder(t *testing.T) {
	b := &scriptedBackend{replies: map[string]string{
		"intent parser": `{"ui_elements": [
			{"type": "text", "content": "Title"},
			{"type": "button", "content": "Login"},
			{"type": "image", "content": "logo"}
		], "layout_type": "Column"}`,
	}}
	p := &Pipeline{Backend: b, TemplateOnly: true}
	state := p.Generate(context.Background(), "title, login button, logo")

	plan := state.LayoutPlan
	if plan == nil {
		t.Fatalf("expected layout plan")
	}
	if len(plan.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(plan.Children))
	}
	wantOrder := []string{"Title", "Login", "logo"}
	for i, child := range plan.Children {
		if child.Component.Label() != wantOrder[i] {
			t.Fatalf("child %d out of order: got %q want %q", i, child.Component.Label(), wantOrder[i])
		}
	}
	if plan.Arrangement != "Center" {
		t.Fatalf("expected Center arrangement for Column, got %s", plan.Arrangement)
	}
}

func TestPipelineRowArrangement(t *testing.T) {
	b := &scriptedBackend{replies: map[string]string{
		"intent parser": `{"ui_elements": [{"type": "text", "content": "a"}], "layout_type": "Row"}`,
	}}
	p := &Pipeline{Backend: b, TemplateOnly: true}
	state := p.Generate(context.Background(), "a row")

	if state.LayoutPlan.Arrangement != "Start" {
		t.Fatalf("expected Start arrangement for Row, got %s", state.LayoutPlan.Arrangement)
	}
}

func TestPipelineEmptyElements(t *testing.T) {
	b := &scriptedBackend{replies: map[string]string{
		"intent parser": `{"ui_elements": [], "layout_type": "Column"}`,
	}}
	p := &Pipeline{Backend: b, TemplateOnly: true}
	state := p.Generate(context.Background(), "nothing really")

	if state.CurrentStage != StageComplete {
		t.Fatalf("expected completion with zero elements, got %s", state.CurrentStage)
	}
	if len(state.LayoutPlan.Children) != 0 {
		t.Fatalf("expected empty children, got %d", len(state.LayoutPlan.Children))
	}
	if strings.TrimSpace(state.FinalReport) == "" {
		t.Fatalf("expected report even with no elements")
	}
}

func TestPipelinePrependsBaselineImports(t *testing.T) {
	b := &scriptedBackend{replies: map[string]string{
		"intent parser": `{"ui_elements": [{"type": "text", "content": "Hi"}], "layout_type": "Column"}`,
		"Jetpack":       "```kotlin\nfun Screen() {\n    Text(\"Hi\")\n}\n```",
	}}
	p := &Pipeline{Backend: b}
	state := p.Generate(context.Background(), "text saying hi")

	if !strings.HasPrefix(state.GeneratedCode, "import ") {
		t.Fatalf("expected baseline imports to be prepended:\n%s", state.GeneratedCode)
	}
}

func TestPipelineReviewsNeverEmpty(t *testing.T) {
	p := &Pipeline{TemplateOnly: true}
	state := p.Generate(context.Background(), "plain screen")

	if len(state.AccessibilityFindings) == 0 {
		t.Fatalf("expected at least one accessibility finding")
	}
	if len(state.DesignFindings) == 0 {
		t.Fatalf("expected at least one design finding")
	}
}

func TestPipelineReportSections(t *testing.T) {
	p := &Pipeline{TemplateOnly: true}
	state := p.Generate(context.Background(), "plain screen")

	for _, section := range []string{SectionCode, SectionAccessibility, SectionDesign} {
		if !strings.Contains(state.FinalReport, section) {
			t.Fatalf("report missing section %q:\n%s", section, state.FinalReport)
		}
	}
}

func TestStageNeverRegresses(t *testing.T) {
	state := NewPipelineState("x")
	state.advance(StageCodeGenerated)
	state.advance(StageIntentParsed)

	if state.CurrentStage != StageCodeGenerated {
		t.Fatalf("stage regressed to %s", state.CurrentStage)
	}
}
