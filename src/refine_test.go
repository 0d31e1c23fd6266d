package src

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// cannedBackend returns one fixed reply for every call.
type cannedBackend struct {
	reply string
	err   error
}

func (b cannedBackend) Invoke(ctx context.Context, system, user string) (string, error) {
	return b.reply, b.err
}

func TestRefineWellFormedReply(t *testing.T) {
	reply := `{
		"refined_code": "import androidx.compose.material3.Text\n\n@Composable\nfun Screen() {\n    Text(\"Bigger\")\n}",
		"changes_made": ["Increased text size"],
		"accessibility_notes": ["Text remains readable"],
		"design_notes": ["Follows typography scale"]
	}`
	r := &Refiner{Backend: cannedBackend{reply: reply}}

	result, err := r.Refine(context.Background(), "fun Screen() {}", "make the text bigger")
	if err != nil {
		t.Fatalf("Refine returned error: %v", err)
	}
	if !strings.Contains(result.Code, "Bigger") {
		t.Fatalf("refined code missing change: %q", result.Code)
	}
	if !reflect.DeepEqual(result.Changes, []string{"Increased text size"}) {
		t.Fatalf("unexpected changes: %v", result.Changes)
	}
	if len(result.AccessibilityNotes) != 1 || len(result.DesignNotes) != 1 {
		t.Fatalf("notes not carried through: %#v", result)
	}
}

func TestRefineMalformedReplyRecoversCode(t *testing.T) {
	// Damaged JSON tail; refined_code itself is still recoverable.
	reply := `{"refined_code": "Text(\"fixed\")", "changes_made": [broken`
	r := &Refiner{Backend: cannedBackend{reply: reply}}

	result, err := r.Refine(context.Background(), "Text(\"old\")", "fix it")
	if err != nil {
		t.Fatalf("expected recovery, got error: %v", err)
	}
	if !strings.Contains(result.Code, "fixed") {
		t.Fatalf("unexpected recovered code: %q", result.Code)
	}
}

func TestRefineUnusableReply(t *testing.T) {
	r := &Refiner{Backend: cannedBackend{reply: "sorry, I cannot help with that"}}

	_, err := r.Refine(context.Background(), "Text(\"old\")", "fix it")
	if err == nil {
		t.Fatalf("expected error for reply with no code anchor")
	}
	if !errors.Is(err, ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
}

func TestRefineEmptyInputs(t *testing.T) {
	r := &Refiner{Backend: cannedBackend{reply: "{}"}}

	if _, err := r.Refine(context.Background(), "", "feedback"); !errors.Is(err, ErrEmptyCode) {
		t.Fatalf("expected ErrEmptyCode, got %v", err)
	}
	if _, err := r.Refine(context.Background(), "code", ""); !errors.Is(err, ErrEmptyFeedback) {
		t.Fatalf("expected ErrEmptyFeedback, got %v", err)
	}
}

func TestRefineBackendError(t *testing.T) {
	r := &Refiner{Backend: cannedBackend{err: errors.New("connection refused")}}

	if _, err := r.Refine(context.Background(), "code", "feedback"); err == nil {
		t.Fatalf("expected backend error to surface")
	}
}

func TestFormatRefinementNotes(t *testing.T) {
	result := &RefinementResult{
		Changes:            []string{"moved the button"},
		AccessibilityNotes: []string{"larger touch target"},
		DesignNotes:        []string{"better spacing"},
	}
	accessibility, design := FormatRefinementNotes(result)

	if !strings.Contains(accessibility, "Improvements Made:") ||
		!strings.Contains(accessibility, "• larger touch target") {
		t.Fatalf("unexpected accessibility notes: %q", accessibility)
	}
	if !strings.Contains(design, "Changes Applied:") ||
		!strings.Contains(design, "• moved the button") {
		t.Fatalf("unexpected design notes: %q", design)
	}
}

func TestHistoryAppendSequences(t *testing.T) {
	h := &History{}

	first := h.Append(IterationRecord{Description: "initial"})
	second := h.Append(IterationRecord{Description: "refined", Feedback: "bigger"})

	if first.Sequence != 1 || second.Sequence != 2 {
		t.Fatalf("unexpected sequences: %d, %d", first.Sequence, second.Sequence)
	}
	if first.ID == "" || first.ID == second.ID {
		t.Fatalf("expected distinct non-empty IDs")
	}
	if h.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", h.Len())
	}

	latest, ok := h.Latest()
	if !ok || latest.Feedback != "bigger" {
		t.Fatalf("unexpected latest record: %#v", latest)
	}

	h.Reset()
	if h.Len() != 0 {
		t.Fatalf("expected empty history after reset")
	}
	if next := h.Append(IterationRecord{}); next.Sequence != 1 {
		t.Fatalf("expected sequence restart at 1, got %d", next.Sequence)
	}
}

func TestHistoryRecordsReturnsCopy(t *testing.T) {
	h := &History{}
	h.Append(IterationRecord{Description: "a"})

	records := h.Records()
	records[0].Description = "mutated"

	if got, _ := h.Latest(); got.Description != "a" {
		t.Fatalf("history record mutated through copy: %q", got.Description)
	}
}
