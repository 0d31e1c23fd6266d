package src

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// backendBudget bounds one generation or refinement round trip.
const backendBudget = 10 * time.Minute

// runPrompt dispatches the textarea input: slash commands first, otherwise
// a fresh generation run.
func (m *model) runPrompt(raw string) (tea.Model, tea.Cmd) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return m, nil
	}
	m.textarea.Reset()

	switch {
	case raw == "/reset":
		m.history.Reset()
		m.currentReport = ""
		m.currentCode = ""
		m.currentAccessibility = ""
		m.currentDesign = ""
		m.lastValidation = nil
		m.lastDescription = ""
		m.lastFeedback = ""
		m.generatedFiles = nil
		m.progressLog = ""
		m.viewport.SetContent("Session reset. Describe a new UI to get started.")
		return m, nil

	case raw == "/validate":
		m.validateNext = !m.validateNext
		m.progressLog += fmt.Sprintf("ℹ️ Validation %s\n", onOff(m.validateNext))
		m.syncViewport(false)
		return m, nil

	case raw == "/multifile":
		m.multiFile = !m.multiFile
		m.progressLog += fmt.Sprintf("ℹ️ Multi-file output %s\n", onOff(m.multiFile))
		m.syncViewport(false)
		return m, nil

	case strings.HasPrefix(raw, "/save"):
		dir := strings.TrimSpace(strings.TrimPrefix(raw, "/save"))
		return m.saveFiles(dir)

	case strings.HasPrefix(raw, "/refine"):
		feedback := strings.TrimSpace(strings.TrimPrefix(raw, "/refine"))
		return m.startRefinement(feedback)
	}

	return m.startGeneration(raw)
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

// saveFiles writes the current multi-file output under dir, defaulting to
// the project directory.
func (m *model) saveFiles(dir string) (tea.Model, tea.Cmd) {
	files := m.generatedFiles
	if len(files) == 0 && m.currentCode != "" {
		files = []GeneratedFile{{Path: "GeneratedUI.kt", Code: m.currentCode}}
	}
	if len(files) == 0 {
		m.progressLog += m.style.Error.Render("❌ Nothing to save. Generate a UI first.") + "\n"
		m.syncViewport(true)
		return m, nil
	}
	if dir == "" {
		dir = m.projectDir
	}
	if dir == "" {
		m.progressLog += m.style.Error.Render("❌ /save needs a directory, e.g. /save ./out") + "\n"
		m.syncViewport(true)
		return m, nil
	}

	written, err := WriteGeneratedFiles(dir, files)
	if err != nil {
		m.progressLog += m.style.Error.Render(fmt.Sprintf("❌ Saved %d files, then: %v", written, err)) + "\n"
	} else {
		m.progressLog += m.style.Success.Render(fmt.Sprintf("✅ Saved %d files under %s", written, dir)) + "\n"
	}
	m.syncViewport(true)
	return m, nil
}

func (m *model) startGeneration(description string) (tea.Model, tea.Cmd) {
	m.isThinking = true
	m.thinking = "generating UI code"
	m.progressLog = fmt.Sprintf("🔮 Generating UI for: %s\n\n", description)
	m.syncViewport(true)

	cmd := func() tea.Msg {
		go m.runGeneration(description)
		return m.spinner.Tick()
	}
	return m, tea.Batch(cmd, m.spinner.Tick)
}

// runGeneration executes one full pipeline run off the UI goroutine,
// streaming stage progress back through the program.
func (m *model) runGeneration(description string) {
	ctx, cancel := context.WithTimeout(m.ctx, backendBudget)
	defer cancel()

	state := NewPipelineState(description)
	state.ValidateRequested = m.validateNext
	state.MultiFile = m.multiFile
	state.Examples = m.searcher.SearchExamples(ctx, description, 3)

	if m.projectDir != "" {
		if proj, err := ReadProjectStructure(m.projectDir); err == nil {
			state.ExistingComponents = proj.Components
		}
	}

	pipeline := &Pipeline{
		Backend: m.pipeline.Backend,
		Log: func(format string, args ...any) {
			m.Program.Send(progressMsg{line: fmt.Sprintf(format, args...)})
		},
	}
	pipeline.Run(ctx, state)

	var validation *ValidationReport
	if state.ValidateRequested {
		validation = RunValidation(ctx, state.GeneratedCode)
	}

	m.Program.Send(generateDoneMsg{state: state, validation: validation})
}

func (m *model) startRefinement(feedback string) (tea.Model, tea.Cmd) {
	if feedback == "" {
		m.progressLog += m.style.Error.Render("❌ /refine needs feedback, e.g. /refine make the button bigger") + "\n"
		m.syncViewport(true)
		return m, nil
	}
	if m.currentCode == "" {
		m.progressLog += m.style.Error.Render("❌ No current code to refine. Generate a UI first.") + "\n"
		m.syncViewport(true)
		return m, nil
	}

	m.isThinking = true
	m.thinking = "refining UI code"
	m.lastFeedback = feedback
	m.progressLog = fmt.Sprintf("✨ Refining with feedback: %s\n\n", feedback)
	m.syncViewport(true)

	priorCode := m.currentCode
	cmd := func() tea.Msg {
		go func() {
			ctx, cancel := context.WithTimeout(m.ctx, backendBudget)
			defer cancel()
			result, err := m.refiner.Refine(ctx, priorCode, feedback)
			m.Program.Send(refineDoneMsg{result: result, err: err})
		}()
		return m.spinner.Tick()
	}
	return m, tea.Batch(cmd, m.spinner.Tick)
}
