package src

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Amehran/Multi-Agent-Mobile-UI-Assistant/src/ui"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.viewHeader())
		footerHeight := lipgloss.Height(m.viewFooter())
		m.width, m.height = msg.Width, msg.Height
		m.textarea.SetWidth(m.width - 4)
		m.viewport.Width = m.width - 4
		m.viewport.Height = m.height - headerHeight - footerHeight - m.textarea.Height() - 6
		m.syncViewport(false)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {

		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.tab = nextTab(m.tab, 1)
			m.syncViewport(false)
			return m, nil

		case "shift+tab":
			m.tab = nextTab(m.tab, -1)
			m.syncViewport(false)
			return m, nil

		case "enter":
			raw := strings.TrimSpace(m.textarea.Value())
			if raw == "" {
				return m, nil
			}
			return m.runPrompt(raw)
		}

	case progressMsg:
		m.progressLog += msg.line + "\n"
		if m.isThinking {
			m.syncViewport(true)
		}
		return m, nil

	case generateDoneMsg:
		m.isThinking = false
		m.thinking = ""
		m.applyGeneration(msg.state, msg.validation)
		m.tab = ui.TabReport
		m.syncViewport(true)
		return m, nil

	case refineDoneMsg:
		m.isThinking = false
		m.thinking = ""
		if msg.err != nil {
			m.progressLog += m.style.Error.Render(fmt.Sprintf("❌ Refinement failed: %v", msg.err)) + "\n"
			m.syncViewport(true)
			return m, nil
		}
		m.applyRefinement(msg.result)
		m.tab = ui.TabCode
		m.syncViewport(true)
		return m, nil
	}

	var cmds []tea.Cmd
	var taCmd, vpCmd tea.Cmd
	m.textarea, taCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	cmds = append(cmds, taCmd, vpCmd)

	if m.isThinking {
		var spinnerCmd tea.Cmd
		m.spinner, spinnerCmd = m.spinner.Update(msg)
		cmds = append(cmds, spinnerCmd)
	}
	return m, tea.Batch(cmds...)
}

func nextTab(t ui.Tab, delta int) ui.Tab {
	n := len(ui.Tabs)
	return ui.Tab((int(t) + delta + n) % n)
}

// applyGeneration folds a completed pipeline run into the session: the
// panes get the new snapshot and the history grows by one record.
func (m *model) applyGeneration(state *PipelineState, validation *ValidationReport) {
	code := ExtractCodeFromReport(state.FinalReport)
	accessibility := ExtractReportSection(state.FinalReport, SectionAccessibility)
	design := ExtractReportSection(state.FinalReport, SectionDesign)

	m.currentReport = state.FinalReport
	m.currentCode = code
	m.currentAccessibility = accessibility
	m.currentDesign = design
	m.lastValidation = validation
	m.lastDescription = state.UserInput

	m.generatedFiles = nil
	if state.MultiFile {
		m.generatedFiles = ParseMultiFileOutput(state.GeneratedCode)
	}

	m.history.Append(IterationRecord{
		Description:   state.UserInput,
		Code:          code,
		Accessibility: accessibility,
		Design:        design,
	})
}

// applyRefinement folds a refinement result into the session. History is
// append-only: the prior snapshot stays untouched.
func (m *model) applyRefinement(result *RefinementResult) {
	accessibility, design := FormatRefinementNotes(result)

	m.currentCode = result.Code
	m.currentAccessibility = accessibility
	m.currentDesign = design
	m.currentReport = AssembleReport(result.Code,
		bulletLines(result.AccessibilityNotes),
		append(bulletLines(result.DesignNotes), result.Changes...))

	m.history.Append(IterationRecord{
		Description:   m.lastDescription,
		Code:          result.Code,
		Accessibility: accessibility,
		Design:        design,
		Feedback:      m.lastFeedback,
	})
}

func bulletLines(notes []string) []string {
	if len(notes) == 0 {
		return []string{"No issues found"}
	}
	return notes
}

// syncViewport refreshes the viewport with the active pane's content.
func (m *model) syncViewport(gotoBottom bool) {
	m.viewport.SetContent(m.paneContent())
	if gotoBottom {
		m.viewport.GotoBottom()
	}
}

func (m *model) paneContent() string {
	if m.isThinking {
		return m.progressLog
	}
	switch m.tab {
	case ui.TabCode:
		if m.currentCode == "" {
			return "No code yet. Describe a UI and press enter."
		}
		out := m.currentCode
		if len(m.generatedFiles) > 0 {
			out += "\n\n" + m.style.Accent.Render("Files") + "\n" + FileTreePreview(m.generatedFiles) +
				"\n" + m.style.Subtle.Render("Use /save <dir> to write them to disk.")
		}
		if m.lastValidation != nil {
			out += "\n\n" + m.renderValidation(m.lastValidation)
		}
		return out
	case ui.TabAccessibility:
		return orPlaceholder(m.currentAccessibility)
	case ui.TabDesign:
		return orPlaceholder(m.currentDesign)
	case ui.TabHistory:
		return m.renderHistory()
	default:
		return orPlaceholder(m.currentReport)
	}
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Nothing here yet."
	}
	return s
}

func (m *model) renderValidation(v *ValidationReport) string {
	var b strings.Builder
	b.WriteString(m.style.Accent.Render("Validation") + "\n")

	if len(v.Findings) == 0 {
		b.WriteString(m.style.Success.Render("✅ No lint findings") + "\n")
	}
	for _, f := range v.Findings {
		line := fmt.Sprintf("%s (line %d): %s", f.Severity, f.Line, f.Message)
		if f.Severity == SeverityError {
			b.WriteString(m.style.Error.Render("❌ "+line) + "\n")
		} else {
			b.WriteString(m.style.Subtle.Render("⚠️ "+line) + "\n")
		}
	}

	for _, fix := range v.FixesApplied {
		b.WriteString(m.style.Success.Render("🔧 Added "+fix) + "\n")
	}

	if v.Compilation.Success {
		b.WriteString(m.style.Success.Render("✅ Compilation check passed") + "\n")
	} else {
		for _, e := range v.Compilation.Errors {
			b.WriteString(m.style.Error.Render("❌ "+e) + "\n")
		}
	}
	for _, w := range v.Compilation.Warnings {
		b.WriteString(m.style.Subtle.Render("⚠️ "+w) + "\n")
	}
	return b.String()
}

func (m *model) renderHistory() string {
	records := m.history.Records()
	if len(records) == 0 {
		return "No iterations yet."
	}
	var b strings.Builder
	for _, r := range records {
		b.WriteString(m.style.Accent.Render(fmt.Sprintf("Iteration %d", r.Sequence)))
		b.WriteString(m.style.Subtle.Render("  " + r.Timestamp.Format("2006-01-02 15:04:05")))
		b.WriteByte('\n')
		b.WriteString("  " + r.Description + "\n")
		if r.Feedback != "" {
			b.WriteString(m.style.Subtle.Render("  feedback: "+r.Feedback) + "\n")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
