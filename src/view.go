package src

import (
	"github.com/Amehran/Multi-Agent-Mobile-UI-Assistant/src/ui"
)

func (m *model) View() string {
	return ui.Render(m.uiState(), m.style)
}

func (m *model) uiState() ui.State {
	return ui.State{
		Tab:          m.tab,
		ProjectDir:   m.projectDir,
		Iteration:    m.history.Len(),
		Provider:     string(m.cfg.Provider),
		Model:        m.cfg.Model,
		Validate:     m.validateNext,
		MultiFile:    m.multiFile,
		IsThinking:   m.isThinking,
		ThinkingText: m.thinking,
		TextArea:     m.textarea,
		Viewport:     m.viewport,
		Spinner:      m.spinner,
	}
}

// Chrome measurement for viewport sizing.
func (m *model) viewHeader() string { return ui.RenderHeader(m.style) }
func (m *model) viewFooter() string { return ui.RenderFooter(m.style) }
