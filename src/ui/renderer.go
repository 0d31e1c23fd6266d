package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const Logo = `
 ██████╗ ██████╗ ███╗   ███╗██████╗  ██████╗ ███████╗███████╗
██╔════╝██╔═══██╗████╗ ████║██╔══██╗██╔═══██╗██╔════╝██╔════╝
██║     ██║   ██║██╔████╔██║██████╔╝██║   ██║███████╗█████╗
██║     ██║   ██║██║╚██╔╝██║██╔═══╝ ██║   ██║╚════██║██╔══╝
╚██████╗╚██████╔╝██║ ╚═╝ ██║██║     ╚██████╔╝███████║███████╗
 ╚═════╝ ╚═════╝ ╚═╝     ╚═╝╚═╝      ╚═════╝ ╚══════╝╚══════╝
           M O B I L E  ·  U I  ·  A S S I S T A N T
`

// Render generates the full UI string based on the provided state.
func Render(s State, styles Styles) string {
	header := RenderHeader(styles)
	body := renderBody(s, styles)
	footer := RenderFooter(styles)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// RenderHeader draws the logo block. Exported so the program can measure
// the chrome when sizing the viewport.
func RenderHeader(styles Styles) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AD8CFF")).Bold(true)
	subtitle := styles.Header.Render("Jetpack Compose UI Generator")
	styledLogo := logoStyle.Render(Logo)

	return lipgloss.JoinVertical(lipgloss.Left, styledLogo, subtitle)
}

// RenderFooter draws the help line.
func RenderFooter(styles Styles) string {
	help := "ctrl+c: quit | tab: switch pane | enter: generate | /refine <feedback> | /validate | /multifile | /save <dir> | /reset"
	return styles.Footer.Render(help)
}

func renderBody(s State, styles Styles) string {
	view := lipgloss.JoinVertical(lipgloss.Left,
		renderStatus(s, styles),
		RenderTabs(s.Tab, styles),
		s.Viewport.View(),
		renderThinking(s, styles),
		s.TextArea.View(),
	)
	return styles.Container.Render(view)
}

func renderStatus(s State, styles Styles) string {
	items := []string{
		styles.Status.Render(fmt.Sprintf("BACKEND: %s/%s", s.Provider, s.Model)),
		styles.Status.Render(fmt.Sprintf("ITERATION: %d", s.Iteration)),
	}
	if s.Validate {
		items = append(items, styles.Status.Render("VALIDATE"))
	}
	if s.MultiFile {
		items = append(items, styles.Status.Render("MULTI-FILE"))
	}
	if s.ProjectDir != "" {
		items = append(items, styles.StatusRight.Render("PROJECT: "+s.ProjectDir))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

// RenderTabs draws the pane selector with the active tab highlighted.
func RenderTabs(active Tab, styles Styles) string {
	var parts []string
	for _, t := range Tabs {
		if t == active {
			parts = append(parts, styles.TabActive.Render("["+t.String()+"]"))
		} else {
			parts = append(parts, styles.Tab.Render(t.String()))
		}
	}
	return strings.Join(parts, " ")
}

func renderThinking(s State, styles Styles) string {
	if !s.IsThinking {
		return ""
	}
	return styles.Thinking.Render(fmt.Sprintf("Assistant %s %s", s.Spinner.View(), s.ThinkingText))
}
