package app

import (
	"gitlab.com/tinyland/lab/unit-pulse/pkg/convert"
	"gitlab.com/tinyland/lab/unit-pulse/pkg/router"
	"gitlab.com/tinyland/lab/unit-pulse/pkg/token"
)

// Reduce applies one event to the state and returns the next state plus
// at most one outbound effect. It is a total function: malformed input
// is absorbed as "no change" (unparseable numbers) or mapped to a
// defined fallback (unknown routes, short credentials), never an error.
func Reduce(s State, ev Event) (State, *FetchRequest) {
	switch ev := ev.(type) {
	case LocationChangedEvent:
		s.Page = router.Decode(ev.Path)

	case UnitInputEvent:
		// A failed parse leaves the stored value untouched; there is no
		// partial update and no user-visible error.
		if v, err := convert.FromDisplay(ev.Unit, ev.Text); err == nil {
			s.BaseMetres = v
		}

	case CredentialInputEvent:
		s.Credential = Credential{Text: ev.Text, Valid: token.IsValid(ev.Text)}
		// Revalidated on every edit: any edit that passes the length
		// check fires a fetch, not just the invalid-to-valid edge.
		if s.Credential.Valid {
			return s, &FetchRequest{Token: ev.Text}
		}

	case ProfileFetchedEvent:
		if ev.Err != nil {
			s.ProfileText = ErrorPlaceholder
		} else {
			s.ProfileText = ev.Profile
		}
	}

	return s, nil
}
