package src

import (
	"context"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Amehran/Multi-Agent-Mobile-UI-Assistant/src/ui"
)

// generateDoneMsg is sent when one full pipeline run has finished.
type generateDoneMsg struct {
	state      *PipelineState
	validation *ValidationReport
}

// refineDoneMsg is sent when a refinement call returns.
type refineDoneMsg struct {
	result *RefinementResult
	err    error
}

// progressMsg streams one stage log line into the viewport while a run is
// in flight.
type progressMsg struct {
	line string
}

type model struct {
	ctx      context.Context
	cfg      BackendConfig
	pipeline *Pipeline
	refiner  *Refiner
	searcher *ExampleSearcher

	// projectDir, when set, is an existing Android project whose
	// composables get fed into generation prompts.
	projectDir string

	history *History

	// Current iteration snapshot shown in the panes.
	currentReport        string
	currentCode          string
	currentAccessibility string
	currentDesign        string
	lastValidation       *ValidationReport
	lastDescription      string
	lastFeedback         string
	generatedFiles       []GeneratedFile

	progressLog string

	tab          ui.Tab
	isThinking   bool
	thinking     string
	validateNext bool
	multiFile    bool

	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	width    int
	height   int
	style    ui.Styles

	Program *tea.Program
}

// NewModel wires the TUI around an injected backend configuration. The
// pipeline and refiner share one backend client built at startup.
func NewModel(ctx context.Context, cfg BackendConfig, backend Backend, projectDir string) *model {
	ta := textarea.New()
	ta.Placeholder = "Describe the UI you want (e.g. \"login screen with title, email, password and a button\")..."
	ta.Focus()
	ta.SetHeight(3)

	st := ui.NewStyles()

	vp := viewport.New(0, 0)
	vp.SetContent("Welcome! Describe a mobile UI to generate Jetpack Compose code.\n\n" +
		"Commands: /refine <feedback>, /validate, /multifile, /reset")

	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = st.Thinking

	m := &model{
		ctx:        ctx,
		cfg:        cfg,
		pipeline:   &Pipeline{Backend: backend},
		refiner:    &Refiner{Backend: backend},
		searcher:   NewExampleSearcher(os.Getenv("GITHUB_TOKEN")),
		projectDir: projectDir,
		history:    &History{},
		tab:        ui.TabReport,
		textarea:   ta,
		viewport:   vp,
		spinner:    s,
		style:      st,
	}
	return m
}

func (m *model) Init() tea.Cmd { return nil }
