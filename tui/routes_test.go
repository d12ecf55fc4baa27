package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		path   string
		route  Route
		served bool
	}{
		{path: "/", route: Route{Kind: RouteHome}, served: true},
		{path: "", route: Route{Kind: RouteHome}, served: true},
		{path: "/home", route: Route{Kind: RouteHome}, served: true},
		{path: "/movie/42", route: Route{Kind: RouteTitle, RawID: "42"}, served: true},
		{path: "/movie/abc", route: Route{Kind: RouteTitle, RawID: "abc"}, served: true},
		{path: "/contributor/7", route: Route{Kind: RouteContributor, RawID: "7"}, served: true},
		{path: "/movie", route: Route{Kind: RouteHome}},
		{path: "/contributor", route: Route{Kind: RouteHome}},
		{path: "/movie/1/extra", route: Route{Kind: RouteHome}},
		{path: "/unknown", route: Route{Kind: RouteHome}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			route, served := ParseRoute(tt.path)
			assert.Equal(t, tt.served, served)
			assert.Equal(t, tt.route, route)
		})
	}
}

func TestRouter(t *testing.T) {
	r := NewRouter()
	assert.Equal(t, "/", r.Current())

	_, ok := r.Back()
	assert.False(t, ok)

	r.Push(TitlePath(42))
	r.Push(ContributorPath(3))
	assert.Equal(t, "/contributor/3", r.Current())
	assert.Equal(t, 2, r.Depth())

	// same path does not grow history
	r.Push(ContributorPath(3))
	assert.Equal(t, 2, r.Depth())

	// unknown paths land on home
	route := r.Push("/nowhere")
	assert.Equal(t, RouteHome, route.Kind)
	assert.Equal(t, "/", r.Current())

	route, ok = r.Back()
	assert.True(t, ok)
	assert.Equal(t, Route{Kind: RouteContributor, RawID: "3"}, route)

	r.Replace("/movie")
	assert.Equal(t, "/", r.Current())
	assert.Equal(t, 2, r.Depth())
}

func TestRouterReplaceCollapsesRedirect(t *testing.T) {
	r := NewRouter()
	r.Push("/movie/abc")
	assert.Equal(t, 1, r.Depth())

	route := r.Replace("/")
	assert.Equal(t, RouteHome, route.Kind)
	assert.Zero(t, r.Depth())
}
