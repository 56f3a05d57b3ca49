// Package app implements the Elm-architecture core of unit-pulse: the
// application state record, the event types that mutate it, and the
// single reducer that applies them. Every external stimulus -- a
// navigation change, a keystroke in an input field, a completed network
// fetch -- enters as one of these events, and the reducer is the only
// writer of state.
package app

import "gitlab.com/tinyland/lab/unit-pulse/pkg/convert"

// Event is a discrete message consumed by Reduce. The set is closed;
// each variant corresponds to exactly one state transition.
type Event interface {
	appEvent()
}

// LocationChangedEvent reports that the current location path changed,
// either at startup or from a navigation action.
type LocationChangedEvent struct {
	Path string
}

// UnitInputEvent carries the text of one unit input field after an edit.
type UnitInputEvent struct {
	Unit convert.Unit
	Text string
}

// CredentialInputEvent carries the credential field text after an edit.
type CredentialInputEvent struct {
	Text string
}

// ProfileFetchedEvent delivers the result of a profile fetch back into
// the update loop. Err is non-nil if the fetch failed; Profile is the
// raw payload otherwise.
type ProfileFetchedEvent struct {
	Profile string
	Err     error
}

func (LocationChangedEvent) appEvent() {}
func (UnitInputEvent) appEvent()       {}
func (CredentialInputEvent) appEvent() {}
func (ProfileFetchedEvent) appEvent()  {}
