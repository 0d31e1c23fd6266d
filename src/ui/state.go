package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
)

// Tab selects which pane of the session the viewport shows.
type Tab int

const (
	TabReport Tab = iota
	TabCode
	TabAccessibility
	TabDesign
	TabHistory
)

func (t Tab) String() string {
	switch t {
	case TabReport:
		return "Report"
	case TabCode:
		return "Code"
	case TabAccessibility:
		return "Accessibility"
	case TabDesign:
		return "Design"
	case TabHistory:
		return "History"
	default:
		return "Unknown"
	}
}

// Tabs is the fixed pane order.
var Tabs = []Tab{TabReport, TabCode, TabAccessibility, TabDesign, TabHistory}

// State contains all the data required to render the UI.
// This decouples the renderer from the main application logic.
type State struct {
	Tab          Tab
	ProjectDir   string
	Iteration    int
	Provider     string
	Model        string
	Validate     bool
	MultiFile    bool
	IsThinking   bool
	ThinkingText string

	// Bubble Tea models
	TextArea textarea.Model
	Viewport viewport.Model
	Spinner  spinner.Model
}
