package tui

import (
	"strings"

	"gitlab.com/tinyland/lab/unit-pulse/pkg/app"
	"gitlab.com/tinyland/lab/unit-pulse/pkg/components"
	"gitlab.com/tinyland/lab/unit-pulse/pkg/convert"
	"gitlab.com/tinyland/lab/unit-pulse/pkg/router"
)

// View renders the full frame: header with nav menu, the current page
// body, and a one-line status bar pinned to the bottom.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.state.Page {
	case router.PageHome:
		b.WriteString(m.renderHome())
	case router.PageUnitConverter:
		b.WriteString(m.renderConverter())
	case router.PageGitHubInfo:
		b.WriteString(m.renderGitHubInfo())
	default:
		b.WriteString(m.renderNotFound())
	}

	out := padToHeight(b.String(), m.height-1)
	out += "\n" + m.renderStatusBar()

	// Scan registers the nav zones' on-screen positions for mouse hits.
	return m.zones.Scan(out)
}

func (m Model) renderHeader() string {
	title := m.theme.Title.Render("unit-pulse")

	items := make([]string, 0, 3)
	for i, r := range router.Routes() {
		style := m.theme.NavItem
		if r.Page == m.state.Page {
			style = m.theme.NavHere
		}
		items = append(items, m.zones.Mark(navZoneID(i), style.Render(r.Label)))
	}

	nav := strings.Join(items, "  |  ")
	return " " + title + "   " + nav
}

func (m Model) renderHome() string {
	return m.theme.PageBody.Render(strings.Join([]string{
		"Welcome.",
		"",
		"Pick a page from the menu above: convert lengths between units,",
		"or look up your GitHub profile with a personal access token.",
	}, "\n"))
}

func (m Model) renderConverter() string {
	var lines []string
	for i, u := range convert.Units {
		label := m.theme.Label.Render(components.PadRight(u.String()+":", 8))
		lines = append(lines, label+" "+m.unitInputs[i].View())
	}
	lines = append(lines, "")
	lines = append(lines, m.theme.Hint.Render("Edit any field; the others follow."))
	return m.theme.PageBody.Render(strings.Join(lines, "\n"))
}

func (m Model) renderGitHubInfo() string {
	var lines []string
	lines = append(lines, m.theme.Label.Render("Token:")+" "+m.credInput.View())
	lines = append(lines, "")

	switch {
	case !m.state.Credential.Valid:
		lines = append(lines, m.theme.Hint.Render(
			"If you enter a 40-character token, I will fetch your profile."))
	case m.state.ProfileText == "":
		lines = append(lines, m.theme.Hint.Render("Fetching..."))
	case m.state.ProfileText == app.ErrorPlaceholder:
		lines = append(lines, m.theme.ErrText.Render(m.state.ProfileText))
	default:
		lines = append(lines, m.state.ProfileText)
	}

	return m.theme.PageBody.Render(strings.Join(lines, "\n"))
}

func (m Model) renderNotFound() string {
	return strings.Join([]string{
		"",
		components.PadCenter(m.theme.Title.Render("Not Found"), m.width),
		"",
		components.PadCenter(m.theme.Hint.Render("That page does not exist. Use the menu above."), m.width),
	}, "\n")
}

func (m Model) renderStatusBar() string {
	hints := "1/2/3:navigate  Tab:next field  Esc:done  q:quit  Ctrl+C:force quit"
	if m.editing {
		hints = "Tab:next field  Esc:done  Ctrl+C:quit"
	}
	return components.Dim(components.PadRight(components.Truncate(" "+hints, m.width), m.width))
}

// padToHeight appends blank lines until content spans exactly h lines,
// truncating if it is already taller.
func padToHeight(content string, h int) string {
	if h <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	for len(lines) < h {
		lines = append(lines, "")
	}
	if len(lines) > h {
		lines = lines[:h]
	}
	return strings.Join(lines, "\n")
}
