// Package tui implements the interactive terminal UI for unit-pulse.
// The Model is a thin bubbletea shell around the app reducer: input
// widgets translate keystrokes into app events, the reducer owns every
// state transition, and the views render the resulting state.
package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/unit-pulse/pkg/app"
	"gitlab.com/tinyland/lab/unit-pulse/pkg/convert"
	"gitlab.com/tinyland/lab/unit-pulse/pkg/github"
	"gitlab.com/tinyland/lab/unit-pulse/pkg/router"
)

// Model is the root bubbletea model.
type Model struct {
	state   app.State
	fetcher github.Fetcher
	theme   Theme
	zones   *zone.Manager

	unitInputs [4]textinput.Model // indexed like convert.Units
	credInput  textinput.Model

	focusIdx int  // which input on the current page has focus
	editing  bool // true while an input receives keystrokes

	width, height int
	ready         bool
	quitting      bool
}

// New creates a model showing the page for startupPath. The fetcher is
// used for every profile request; tests and -use-mocks pass a mock.
func New(fetcher github.Fetcher, startupPath string, theme Theme) Model {
	m := Model{
		state:   app.NewState(startupPath),
		fetcher: fetcher,
		theme:   theme,
		zones:   zone.New(),
	}

	for i := range m.unitInputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "0"
		ti.Width = 18
		m.unitInputs[i] = ti
	}

	cred := textinput.New()
	cred.Prompt = ""
	cred.Placeholder = "40-character personal access token"
	cred.Width = 44
	m.credInput = cred

	m.populateInputs()
	m.enterPage()
	return m
}

// Init starts the cursor blink for the text inputs.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update routes messages to the reducer and the focused input widget.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case app.ProfileFetchedEvent:
		cmd := m.apply(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C quits no matter what has focus.
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.editing {
		switch msg.Type {
		case tea.KeyEscape:
			m.blurAll()
			m.editing = false
			return m, nil
		case tea.KeyTab:
			cmd := m.cycleFocus(1)
			return m, cmd
		case tea.KeyShiftTab:
			cmd := m.cycleFocus(-1)
			return m, cmd
		}
		return m.updateFocusedInput(msg)
	}

	switch msg.Type {
	case tea.KeyTab, tea.KeyEnter:
		if m.focusableCount() > 0 {
			m.editing = true
			m.focusIdx = 0
			cmd := m.focusCurrent()
			return m, cmd
		}
		return m, nil

	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return m, nil
		}
		switch r := msg.Runes[0]; r {
		case 'q':
			m.quitting = true
			return m, tea.Quit
		case '1', '2', '3':
			routes := router.Routes()
			if i := int(r - '1'); i < len(routes) {
				cmd := m.apply(app.LocationChangedEvent{Path: routes[i].Path})
				return m, cmd
			}
		}
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	for i, r := range router.Routes() {
		if m.zones.Get(navZoneID(i)).InBounds(msg) {
			cmd := m.apply(app.LocationChangedEvent{Path: r.Path})
			return m, cmd
		}
	}
	return m, nil
}

// updateFocusedInput forwards the keystroke to the focused widget and,
// if the text actually changed, feeds the new value to the reducer.
// Cursor movement alone must not re-trigger validation or fetches.
func (m Model) updateFocusedInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch m.state.Page {
	case router.PageUnitConverter:
		i := m.focusIdx
		before := m.unitInputs[i].Value()

		var cmd tea.Cmd
		m.unitInputs[i], cmd = m.unitInputs[i].Update(msg)
		cmds = append(cmds, cmd)

		if m.unitInputs[i].Value() != before {
			ev := app.UnitInputEvent{Unit: convert.Units[i], Text: m.unitInputs[i].Value()}
			cmds = append(cmds, m.apply(ev))
			m.syncOtherUnitInputs()
		}

	case router.PageGitHubInfo:
		before := m.credInput.Value()

		var cmd tea.Cmd
		m.credInput, cmd = m.credInput.Update(msg)
		cmds = append(cmds, cmd)

		if m.credInput.Value() != before {
			cmds = append(cmds, m.apply(app.CredentialInputEvent{Text: m.credInput.Value()}))
		}
	}

	return m, tea.Batch(cmds...)
}

// apply runs one event through the reducer, adopts the new state, and
// turns an emitted fetch request into a bubbletea command.
func (m *Model) apply(ev app.Event) tea.Cmd {
	prev := m.state.Page

	next, req := app.Reduce(m.state, ev)
	m.state = next

	var cmds []tea.Cmd
	if m.state.Page != prev {
		m.populateInputs()
		cmds = append(cmds, m.enterPage())
	}
	if req != nil {
		cmds = append(cmds, app.FetchCmd(m.fetcher, *req))
	}
	return tea.Batch(cmds...)
}

// enterPage resets input focus for the current page: forms start with
// their first field focused, text pages have nothing to focus.
func (m *Model) enterPage() tea.Cmd {
	m.blurAll()
	if m.focusableCount() == 0 {
		m.editing = false
		return nil
	}
	m.editing = true
	m.focusIdx = 0
	return m.focusCurrent()
}

// cycleFocus moves input focus by delta, wrapping at both ends.
func (m *Model) cycleFocus(delta int) tea.Cmd {
	n := m.focusableCount()
	if n == 0 {
		return nil
	}
	m.blurAll()
	m.focusIdx = (m.focusIdx + delta + n) % n
	return m.focusCurrent()
}

// focusableCount returns how many inputs the current page has.
func (m *Model) focusableCount() int {
	switch m.state.Page {
	case router.PageUnitConverter:
		return len(m.unitInputs)
	case router.PageGitHubInfo:
		return 1
	default:
		return 0
	}
}

func (m *Model) focusCurrent() tea.Cmd {
	switch m.state.Page {
	case router.PageUnitConverter:
		return m.unitInputs[m.focusIdx].Focus()
	case router.PageGitHubInfo:
		return m.credInput.Focus()
	}
	return nil
}

func (m *Model) blurAll() {
	for i := range m.unitInputs {
		m.unitInputs[i].Blur()
	}
	m.credInput.Blur()
}

// populateInputs fills every input from the current state, including
// the focused one. Used at startup and on page changes.
func (m *Model) populateInputs() {
	for i, u := range convert.Units {
		m.unitInputs[i].SetValue(formatValue(convert.ToDisplay(u, m.state.BaseMetres)))
	}
	m.credInput.SetValue(m.state.Credential.Text)
}

// syncOtherUnitInputs refreshes the non-focused unit fields from the
// canonical metres value. The field being edited keeps the user's raw
// text so partial entries like "1." survive the keystroke.
func (m *Model) syncOtherUnitInputs() {
	for i, u := range convert.Units {
		if i == m.focusIdx {
			continue
		}
		m.unitInputs[i].SetValue(formatValue(convert.ToDisplay(u, m.state.BaseMetres)))
	}
}

// formatValue renders a float the way the inputs display it.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func navZoneID(i int) string {
	return "nav-" + strconv.Itoa(i)
}

// State returns a snapshot of the application state.
func (m Model) State() app.State { return m.state }

// Editing reports whether an input currently receives keystrokes.
func (m Model) Editing() bool { return m.editing }

// Focused returns the index of the focused input on the current page.
func (m Model) Focused() int { return m.focusIdx }

// Ready reports whether the first WindowSizeMsg has arrived.
func (m Model) Ready() bool { return m.ready }

// Quitting reports whether a quit key has been pressed.
func (m Model) Quitting() bool { return m.quitting }

// Width returns the last known terminal width.
func (m Model) Width() int { return m.width }

// Height returns the last known terminal height.
func (m Model) Height() int { return m.height }

// UnitInputValue returns the text of unit input i, for tests.
func (m Model) UnitInputValue(i int) string { return m.unitInputs[i].Value() }

// CredentialValue returns the credential input text, for tests.
func (m Model) CredentialValue() string { return m.credInput.Value() }
