package tui

import (
	"strconv"
	"strings"
)

// RouteKind is the screen a route shows
type RouteKind int

const (
	RouteHome RouteKind = iota
	RouteTitle
	RouteContributor
)

const homePath = "/"

// Route is a parsed location. RawID is passed to the detail controllers unvalidated.
type Route struct {
	Kind  RouteKind
	RawID string
}

// ParseRoute maps a path onto a screen. Paths no screen serves report false
// and should be replaced by the home route.
func ParseRoute(path string) (Route, bool) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" || trimmed == "home" {
		return Route{Kind: RouteHome}, true
	}

	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[1] == "" {
		return Route{Kind: RouteHome}, false
	}

	switch parts[0] {
	case "movie":
		return Route{Kind: RouteTitle, RawID: parts[1]}, true
	case "contributor":
		return Route{Kind: RouteContributor, RawID: parts[1]}, true
	}
	return Route{Kind: RouteHome}, false
}

// TitlePath is the route of a title
func TitlePath(id int) string {
	return "/movie/" + strconv.Itoa(id)
}

// ContributorPath is the route of a contributor
func ContributorPath(id int) string {
	return "/contributor/" + strconv.Itoa(id)
}

// Router keeps the current path and a back stack
type Router struct {
	current string
	history []string
}

// NewRouter starts at the home route
func NewRouter() *Router {
	return &Router{current: homePath}
}

// Current returns the current path
func (r *Router) Current() string { return r.current }

// Push navigates to path and remembers the current one. Unknown paths become home.
func (r *Router) Push(path string) Route {
	route, ok := ParseRoute(path)
	if !ok {
		path = homePath
	}
	if path != r.current {
		r.history = append(r.history, r.current)
		r.current = path
	}
	return route
}

// Replace swaps the current path without growing the back stack. A replacement equal
// to the previous entry collapses into it.
func (r *Router) Replace(path string) Route {
	route, ok := ParseRoute(path)
	if !ok {
		path = homePath
	}
	r.current = path
	if n := len(r.history); n > 0 && r.history[n-1] == path {
		r.history = r.history[:n-1]
	}
	return route
}

// Back pops the back stack. It reports false when there is nowhere to go.
func (r *Router) Back() (Route, bool) {
	if len(r.history) == 0 {
		return Route{}, false
	}
	r.current = r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	route, _ := ParseRoute(r.current)
	return route, true
}

// Depth is the size of the back stack
func (r *Router) Depth() int { return len(r.history) }
