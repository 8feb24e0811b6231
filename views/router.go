// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
)

// HomePath is where unmatched paths are redirected.
const HomePath = "/home"

// Route pairs a path pattern with the view and template that serve it.
// Pattern segments starting with ':' capture a parameter.
type Route struct {
	Pattern        string
	Name           string
	Template       string
	ReloadOnSearch bool

	build func(deps Deps, params map[string]string) View
}

// Match is the outcome of resolving a path.
type Match struct {
	Route
	Path       string
	Params     map[string]string
	Redirected bool
}

// Router resolves client paths to views.
type Router struct {
	deps   Deps
	routes []Route
}

func NewRouter(deps Deps) *Router {
	return &Router{deps: deps, routes: defaultRoutes()}
}

// The nested batch result route is listed before /batches/:id.
func defaultRoutes() []Route {
	return []Route{
		{
			Pattern: "/home", Name: "home", Template: "home/home", ReloadOnSearch: true,
			build: func(d Deps, _ map[string]string) View { return NewHomeView(d) },
		},
		{
			Pattern: "/reports", Name: "reports", Template: "reports/list", ReloadOnSearch: true,
			build: func(d Deps, _ map[string]string) View { return NewReportListView(d) },
		},
		{
			Pattern: "/reports/:id", Name: "report", Template: "reports/detail", ReloadOnSearch: true,
			build: func(d Deps, p map[string]string) View { return NewReportDetailView(d, p["id"]) },
		},
		{
			Pattern: "/compares", Name: "compares", Template: "compares/list", ReloadOnSearch: true,
			build: func(d Deps, _ map[string]string) View { return NewCompareListView(d) },
		},
		{
			Pattern: "/compares/:id", Name: "compare", Template: "compares/detail", ReloadOnSearch: true,
			build: func(d Deps, p map[string]string) View { return NewCompareDetailView(d, p["id"]) },
		},
		{
			Pattern: "/result-diffs/:id", Name: "diff", Template: "diffs/detail", ReloadOnSearch: true,
			build: func(d Deps, p map[string]string) View { return NewDiffDetailView(d, p["id"]) },
		},
		{
			Pattern: "/batches", Name: "batches", Template: "batches/list", ReloadOnSearch: true,
			build: func(d Deps, _ map[string]string) View { return NewBatchListView(d) },
		},
		{
			Pattern: "/batches/:batchId/results/:resultId", Name: "batch-result", Template: "batches/result",
			ReloadOnSearch: false,
			build: func(d Deps, p map[string]string) View {
				return NewBatchResultView(d, p["batchId"], p["resultId"])
			},
		},
		{
			Pattern: "/batches/:id", Name: "batch", Template: "batches/detail", ReloadOnSearch: true,
			build: func(d Deps, p map[string]string) View { return NewBatchDetailView(d, p["id"]) },
		},
	}
}

// Routes returns the route table in match order.
func (r *Router) Routes() []Route {
	return r.routes
}

// Resolve matches path against the route table. The query string and
// fragment are ignored. Anything unmatched, the empty path included,
// resolves to HomePath with Redirected set.
func (r *Router) Resolve(path string) Match {
	clean := normalize(path)

	for _, route := range r.routes {
		if params, ok := matchPattern(route.Pattern, clean); ok {
			return Match{Route: route, Path: clean, Params: params}
		}
	}

	for _, route := range r.routes {
		if route.Pattern == HomePath {
			return Match{Route: route, Path: HomePath, Params: map[string]string{}, Redirected: true}
		}
	}
	panic("views: route table has no " + HomePath + " route")
}

// Activate resolves path, builds its view and activates it. The view is
// returned even when activation fails so its state can still be rendered.
func (r *Router) Activate(ctx context.Context, path string) (View, Match, error) {
	m := r.Resolve(path)
	if m.Redirected {
		slog.Debug("redirecting unmatched path", "path", path, "to", HomePath)
	}

	v := m.build(r.deps, m.Params)
	return v, m, v.Activate(ctx)
}

// normalize drops the query and fragment and keeps the path escaped so an
// id containing "/" stays one segment.
func normalize(path string) string {
	if u, err := url.Parse(path); err == nil {
		path = u.EscapedPath()
	} else if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	return "/" + strings.Trim(path, "/")
}

func matchPattern(pattern, path string) (map[string]string, bool) {
	want := strings.Split(strings.Trim(pattern, "/"), "/")
	got := strings.Split(strings.Trim(path, "/"), "/")
	if len(want) != len(got) {
		return nil, false
	}

	params := map[string]string{}
	for i, seg := range want {
		switch {
		case strings.HasPrefix(seg, ":"):
			if got[i] == "" {
				return nil, false
			}
			v, err := url.PathUnescape(got[i])
			if err != nil {
				return nil, false
			}
			params[seg[1:]] = v
		case seg != got[i]:
			return nil, false
		}
	}
	return params, true
}
