package src

import (
	"context"
	"errors"
	"fmt"
)

// ErrEmptyCode and ErrEmptyFeedback are input validation errors surfaced to
// the user before any backend call is made.
var (
	ErrEmptyCode     = errors.New("no current code to refine")
	ErrEmptyFeedback = errors.New("feedback must not be empty")
)

// Refiner applies user feedback to previously generated code via the
// backend's structured-output contract.
type Refiner struct {
	Backend Backend
}

// Refine sends priorCode plus feedback to the backend and recovers the
// structured result through the tolerant extraction chain. A reply whose
// JSON is damaged still succeeds as long as refined_code can be recovered;
// only a reply with no usable anchor surfaces an error, and in that case no
// state anywhere has been touched.
func (r *Refiner) Refine(ctx context.Context, priorCode, feedback string) (*RefinementResult, error) {
	if priorCode == "" {
		return nil, ErrEmptyCode
	}
	if feedback == "" {
		return nil, ErrEmptyFeedback
	}
	if r.Backend == nil {
		return nil, fmt.Errorf("no backend configured")
	}

	userMessage := fmt.Sprintf(
		"Current Code:\n```kotlin\n%s\n```\n\nUser Feedback:\n%s\n\nPlease refine the code based on this feedback.",
		priorCode, feedback,
	)

	raw, err := r.Backend.Invoke(ctx, RefinementSystemPrompt, userMessage)
	if err != nil {
		return nil, fmt.Errorf("refinement request: %w", err)
	}

	return parseRefinement(raw)
}

// parseRefinement decodes the structured refinement reply. Strict decoding
// first; failing that, refined_code is recovered field-by-field and the
// note arrays are read best-effort.
func parseRefinement(raw string) (*RefinementResult, error) {
	var decoded struct {
		RefinedCode        string   `json:"refined_code"`
		ChangesMade        []string `json:"changes_made"`
		AccessibilityNotes []string `json:"accessibility_notes"`
		DesignNotes        []string `json:"design_notes"`
	}
	if err := DecodeJSON(raw, &decoded); err == nil && decoded.RefinedCode != "" {
		return &RefinementResult{
			Code:               decoded.RefinedCode,
			Changes:            decoded.ChangesMade,
			AccessibilityNotes: decoded.AccessibilityNotes,
			DesignNotes:        decoded.DesignNotes,
		}, nil
	}

	code, err := ExtractJSONField(raw, "refined_code")
	if err != nil {
		return nil, fmt.Errorf("refinement reply unusable: %w", err)
	}
	return &RefinementResult{
		Code:               code,
		Changes:            ExtractStringList(raw, "changes_made"),
		AccessibilityNotes: ExtractStringList(raw, "accessibility_notes"),
		DesignNotes:        ExtractStringList(raw, "design_notes"),
	}, nil
}

// FormatRefinementNotes renders the refinement note lists as the bullet
// text the history and the front-end display.
func FormatRefinementNotes(result *RefinementResult) (accessibility, design string) {
	accessibility = bulletBlock("Improvements Made:", result.AccessibilityNotes)
	design = bulletBlock("Improvements Made:", result.DesignNotes)
	if len(result.Changes) > 0 {
		design += "\n\n" + bulletBlock("Changes Applied:", result.Changes)
	}
	return accessibility, design
}

func bulletBlock(title string, notes []string) string {
	out := title
	for _, note := range notes {
		out += "\n  • " + note
	}
	return out
}
