package app

import "gitlab.com/tinyland/lab/unit-pulse/pkg/router"

// ErrorPlaceholder is shown in place of profile content when a fetch
// fails. Failure modes are not distinguished.
const ErrorPlaceholder = "Error!"

// Credential is the user-supplied token with its validity tag. The tag
// is derived solely from the text and is recomputed on every edit, so it
// always matches the carried string.
type Credential struct {
	Text  string
	Valid bool
}

// State is the single application state record. It has exactly one
// writer (Reduce) and lives for the whole process.
type State struct {
	Page        router.Page
	BaseMetres  float64
	Credential  Credential
	ProfileText string
}

// Initial returns the startup defaults: home page, zero metres, an
// invalid empty credential, and no profile text.
func Initial() State {
	return State{Page: router.PageHome}
}

// NewState builds the startup state and immediately applies a synthetic
// location change for the startup path, so the first render already
// shows the requested page. A location change emits no effect.
func NewState(startupPath string) State {
	s, _ := Reduce(Initial(), LocationChangedEvent{Path: startupPath})
	return s
}
