// Package router maps opaque location paths to page identifiers for
// unit-pulse. Routing is total: any path that does not match a known
// route resolves to PageNotFound rather than an error.
package router

import "strings"

// Page identifies one of the application's top-level pages.
type Page int

const (
	PageHome Page = iota
	PageUnitConverter
	PageGitHubInfo
	PageNotFound
)

// String returns the display name of the page.
func (p Page) String() string {
	switch p {
	case PageHome:
		return "Home"
	case PageUnitConverter:
		return "Unit Converter"
	case PageGitHubInfo:
		return "GitHub Info"
	default:
		return "Not Found"
	}
}

// Route is a navigable path with its display label.
type Route struct {
	Path  string
	Label string
	Page  Page
}

// routes is the fixed navigation table. PageNotFound is deliberately
// absent: it is a fallback, not a destination.
var routes = []Route{
	{Path: "", Label: "Home", Page: PageHome},
	{Path: "unit-converter", Label: "Unit Converter", Page: PageUnitConverter},
	{Path: "github-info", Label: "GitHub Info", Page: PageGitHubInfo},
}

// Decode resolves a location path to a page. A single leading slash is
// stripped first, so "/" and "" both resolve to PageHome. Unmatched
// paths resolve to PageNotFound; Decode never fails.
func Decode(path string) Page {
	path = strings.TrimPrefix(path, "/")
	for _, r := range routes {
		if r.Path == path {
			return r.Page
		}
	}
	return PageNotFound
}

// Routes returns the ordered set of navigable routes for the nav menu.
// The returned slice is a copy; callers may not mutate the route table.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}
