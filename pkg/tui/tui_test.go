package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/unit-pulse/pkg/app"
	"gitlab.com/tinyland/lab/unit-pulse/pkg/github"
	"gitlab.com/tinyland/lab/unit-pulse/pkg/router"
)

// helper to send a message through Update and return the updated Model.
func tuiUpdate(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// helper to create a model on the home page with a mock fetcher.
func newTestModel(opts ...github.MockFetcherOption) (Model, *github.MockFetcher) {
	f := github.NewMockFetcher(opts...)
	return New(f, "", NewTheme("default", true)), f
}

// runCmd executes a command tree and returns every produced message.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// findProfileEvent executes cmd and returns the first fetch completion
// event it produced, if any.
func findProfileEvent(cmd tea.Cmd) (app.ProfileFetchedEvent, bool) {
	for _, msg := range runCmd(cmd) {
		if ev, ok := msg.(app.ProfileFetchedEvent); ok {
			return ev, true
		}
	}
	return app.ProfileFetchedEvent{}, false
}

func typeText(t *testing.T, m Model, text string) (Model, tea.Cmd) {
	t.Helper()
	return tuiUpdate(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestNewStartsOnHomePage(t *testing.T) {
	m, _ := newTestModel()

	if m.State().Page != router.PageHome {
		t.Errorf("page = %v, want PageHome", m.State().Page)
	}
	if m.Editing() {
		t.Error("home page should not start in editing mode")
	}
	if m.Ready() {
		t.Error("expected ready=false before WindowSizeMsg")
	}
}

func TestNewWithStartupPath(t *testing.T) {
	f := github.NewMockFetcher()

	m := New(f, "unit-converter", NewTheme("default", true))
	if m.State().Page != router.PageUnitConverter {
		t.Errorf("page = %v, want PageUnitConverter", m.State().Page)
	}
	if !m.Editing() {
		t.Error("converter page should start with its first field focused")
	}

	m = New(f, "no-such-page", NewTheme("default", true))
	if m.State().Page != router.PageNotFound {
		t.Errorf("page = %v, want PageNotFound", m.State().Page)
	}
}

func TestWindowSizeMsgSetsReady(t *testing.T) {
	m, _ := newTestModel()

	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if !m.Ready() {
		t.Error("expected ready=true after WindowSizeMsg")
	}
	if m.Width() != 100 || m.Height() != 30 {
		t.Errorf("size = %dx%d, want 100x30", m.Width(), m.Height())
	}
}

func TestDigitKeysNavigate(t *testing.T) {
	m, _ := newTestModel()

	m, _ = typeText(t, m, "2")
	if m.State().Page != router.PageUnitConverter {
		t.Errorf("after '2', page = %v, want PageUnitConverter", m.State().Page)
	}
}

func TestNavigationFocusesFirstField(t *testing.T) {
	m, _ := newTestModel()

	m, _ = typeText(t, m, "2")
	if !m.Editing() {
		t.Error("expected editing=true on the converter page")
	}
	if m.Focused() != 0 {
		t.Errorf("focus = %d, want 0", m.Focused())
	}

	// Inputs are populated from the zero-metre state.
	for i := 0; i < 4; i++ {
		if m.UnitInputValue(i) != "0" {
			t.Errorf("input %d = %q, want \"0\"", i, m.UnitInputValue(i))
		}
	}
}

func TestQQuitsOutsideEditing(t *testing.T) {
	m, _ := newTestModel()

	m, cmd := typeText(t, m, "q")
	if !m.Quitting() {
		t.Error("expected quitting=true after q")
	}
	if cmd == nil {
		t.Error("expected quit command after q")
	}
}

func TestQTypesIntoFocusedInput(t *testing.T) {
	m, _ := newTestModel()
	m, _ = typeText(t, m, "3") // github page, credential focused

	m, _ = typeText(t, m, "q")
	if m.Quitting() {
		t.Error("q while editing should type, not quit")
	}
	if m.CredentialValue() != "q" {
		t.Errorf("credential = %q, want %q", m.CredentialValue(), "q")
	}
}

func TestCtrlCAlwaysQuits(t *testing.T) {
	m, _ := newTestModel()
	m, _ = typeText(t, m, "2") // editing mode on converter page

	m, cmd := tuiUpdate(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.Quitting() {
		t.Error("expected quitting=true after Ctrl+C while editing")
	}
	if cmd == nil {
		t.Error("expected quit command after Ctrl+C")
	}
}

func TestTabCyclesConverterFields(t *testing.T) {
	m, _ := newTestModel()
	m, _ = typeText(t, m, "2")

	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Focused() != 1 {
		t.Errorf("after Tab, focus = %d, want 1", m.Focused())
	}

	// Wrap backward to the last field.
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Focused() != 3 {
		t.Errorf("after wrapping Shift+Tab, focus = %d, want 3", m.Focused())
	}
}

func TestEscLeavesEditingThenQQuits(t *testing.T) {
	m, _ := newTestModel()
	m, _ = typeText(t, m, "2")

	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.Editing() {
		t.Error("expected editing=false after Esc")
	}

	m, _ = typeText(t, m, "q")
	if !m.Quitting() {
		t.Error("q after Esc should quit")
	}
}

func TestEditingMetresUpdatesOtherFields(t *testing.T) {
	m, _ := newTestModel()
	m, _ = typeText(t, m, "2")

	// Focused field is Metres. Replace "0" then type "1": value "01".
	m, _ = typeText(t, m, "1")
	if m.UnitInputValue(0) != "01" {
		t.Fatalf("metres input = %q, want \"01\"", m.UnitInputValue(0))
	}

	s := m.State()
	if s.BaseMetres != 1.0 {
		t.Errorf("BaseMetres = %v, want 1.0", s.BaseMetres)
	}
	if m.UnitInputValue(3) != "3.2808399" {
		t.Errorf("feet input = %q, want \"3.2808399\"", m.UnitInputValue(3))
	}
	if m.UnitInputValue(1) != "39.3700787" {
		t.Errorf("inches input = %q, want \"39.3700787\"", m.UnitInputValue(1))
	}
}

func TestNonNumericInputLeavesStateUnchanged(t *testing.T) {
	m, _ := newTestModel()
	m, _ = typeText(t, m, "2")
	m, _ = typeText(t, m, "1") // BaseMetres = 1.0

	m, _ = typeText(t, m, "x") // metres field now "01x"
	if m.UnitInputValue(0) != "01x" {
		t.Fatalf("metres input = %q, want \"01x\"", m.UnitInputValue(0))
	}

	if m.State().BaseMetres != 1.0 {
		t.Errorf("BaseMetres = %v, want unchanged 1.0", m.State().BaseMetres)
	}
	if m.UnitInputValue(3) != "3.2808399" {
		t.Errorf("feet input = %q, want unchanged", m.UnitInputValue(3))
	}
}

func TestFortyCharTokenTriggersFetch(t *testing.T) {
	m, f := newTestModel(github.WithProfile("profile-payload"))
	m, _ = typeText(t, m, "3")

	tok := strings.Repeat("x", 40)
	m, cmd := typeText(t, m, tok)

	if !m.State().Credential.Valid {
		t.Error("expected valid credential after 40 chars")
	}

	ev, ok := findProfileEvent(cmd)
	if !ok {
		t.Fatal("expected a fetch command for a valid credential")
	}
	if f.CallCount() != 1 {
		t.Errorf("fetcher called %d times, want 1", f.CallCount())
	}
	if ev.Profile != "profile-payload" {
		t.Errorf("profile = %q", ev.Profile)
	}

	// Deliver the completion back through Update.
	m, _ = tuiUpdate(m, ev)
	if m.State().ProfileText != "profile-payload" {
		t.Errorf("ProfileText = %q, want %q", m.State().ProfileText, "profile-payload")
	}
}

func TestShortTokenDoesNotFetch(t *testing.T) {
	m, f := newTestModel()
	m, _ = typeText(t, m, "3")

	m, cmd := typeText(t, m, strings.Repeat("x", 39))

	if m.State().Credential.Valid {
		t.Error("expected invalid credential at 39 chars")
	}
	if _, ok := findProfileEvent(cmd); ok {
		t.Error("expected no fetch command for an invalid credential")
	}
	if f.CallCount() != 0 {
		t.Errorf("fetcher called %d times, want 0", f.CallCount())
	}
}

func TestFailedFetchShowsErrorPlaceholder(t *testing.T) {
	m, _ := newTestModel(github.WithError(errors.New("boom")))
	m, _ = typeText(t, m, "3")

	m, cmd := typeText(t, m, strings.Repeat("x", 40))

	ev, ok := findProfileEvent(cmd)
	if !ok {
		t.Fatal("expected a fetch command")
	}
	if ev.Err == nil {
		t.Fatal("expected fetch error from mock")
	}

	m, _ = tuiUpdate(m, ev)
	if m.State().ProfileText != app.ErrorPlaceholder {
		t.Errorf("ProfileText = %q, want %q", m.State().ProfileText, app.ErrorPlaceholder)
	}
}

func TestViewBeforeResize(t *testing.T) {
	m, _ := newTestModel()
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() before resize = %q, want %q", got, "Initializing...")
	}
}

func TestViewShowsNavAndTitle(t *testing.T) {
	m, _ := newTestModel()
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	out := m.View()
	for _, want := range []string{"unit-pulse", "Home", "Unit Converter", "GitHub Info"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewConverterPageShowsUnitLabels(t *testing.T) {
	m, _ := newTestModel()
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = typeText(t, m, "2")

	out := m.View()
	for _, want := range []string{"Metres:", "Inches:", "Yards:", "Feet:"} {
		if !strings.Contains(out, want) {
			t.Errorf("converter view missing %q", want)
		}
	}
}

func TestViewGitHubPageStates(t *testing.T) {
	m, _ := newTestModel()
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = typeText(t, m, "3")

	out := m.View()
	if !strings.Contains(out, "40-character token") {
		t.Error("expected explanatory message while credential invalid")
	}

	// An invalid credential keeps the hint even if a stray fetch result
	// arrives; results only render once the token passes validation.
	m, _ = tuiUpdate(m, app.ProfileFetchedEvent{Err: errors.New("boom")})
	out = m.View()
	if strings.Contains(out, app.ErrorPlaceholder) {
		t.Error("expected hint, not Error!, while credential invalid")
	}

	m, _ = typeText(t, m, strings.Repeat("x", 40))

	m, _ = tuiUpdate(m, app.ProfileFetchedEvent{Err: errors.New("boom")})
	out = m.View()
	if !strings.Contains(out, app.ErrorPlaceholder) {
		t.Error("expected Error! placeholder after failed fetch")
	}

	m, _ = tuiUpdate(m, app.ProfileFetchedEvent{Profile: `{"login":"octocat"}`})
	out = m.View()
	if !strings.Contains(out, `{"login":"octocat"}`) {
		t.Error("expected profile payload after successful fetch")
	}
}

func TestViewNotFoundPage(t *testing.T) {
	f := github.NewMockFetcher()
	m := New(f, "bogus", NewTheme("default", true))
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	out := m.View()
	if !strings.Contains(out, "Not Found") {
		t.Fatal("expected Not Found page body")
	}

	// The heading is centered within the terminal width.
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Not Found") {
			if !strings.HasPrefix(line, " ") {
				t.Error("expected Not Found heading centered with leading whitespace")
			}
		}
	}
}

func TestViewEmptyWhenQuitting(t *testing.T) {
	m, _ := newTestModel()
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = typeText(t, m, "q")

	if got := m.View(); got != "" {
		t.Errorf("expected empty view when quitting, got %q", got)
	}
}
