package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/unit-pulse/pkg/github"
)

// FetchRequest is the one effect Reduce can emit: issue a profile fetch
// for the given token.
type FetchRequest struct {
	Token string
}

// FetchCmd returns a bubbletea Cmd that runs the fetch in a goroutine
// and delivers the result as a ProfileFetchedEvent. Overlapping fetches
// all run to completion; whichever event arrives last wins. No timeout
// or cancellation is applied.
//
// Usage:
//
//	next, req := app.Reduce(state, ev)
//	if req != nil {
//	    cmd = app.FetchCmd(fetcher, *req)
//	}
func FetchCmd(f github.Fetcher, req FetchRequest) tea.Cmd {
	return func() tea.Msg {
		profile, err := f.FetchProfile(context.Background(), req.Token)
		return ProfileFetchedEvent{Profile: profile, Err: err}
	}
}
