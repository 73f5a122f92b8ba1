// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package navigation

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Router resolves route paths into destinations. It reuses chi's routing
// tree for pattern matching; the registered handlers are never served.
type Router struct {
	mux   *chi.Mux
	pages map[string]Page
}

// NewRouter registers every known route.
func NewRouter() *Router {
	r := &Router{
		mux: chi.NewRouter(),
		pages: map[string]Page{
			RouteSearch:         PageSearch,
			routeProfilePattern: PageProfile,
			RouteHistory:        PageHistory,
			RouteReports:        PageReports,
		},
	}

	for pattern := range r.pages {
		r.mux.Get(pattern, notServed)
	}

	return r
}

// Resolve maps path to a destination. Unknown paths and profile routes
// without a query resolve to the search page. A query that is not validly
// percent-encoded yields [ErrMalformedQuery] together with the search page.
func (r *Router) Resolve(path string) (Destination, error) {
	if path == "" {
		path = RouteSearch
	}

	rctx := chi.NewRouteContext()
	if !r.mux.Match(rctx, http.MethodGet, path) {
		return Destination{Page: PageSearch}, nil
	}

	page, ok := r.pages[rctx.RoutePattern()]
	if !ok {
		return Destination{Page: PageSearch}, nil
	}

	if page != PageProfile {
		return Destination{Page: page}, nil
	}

	query, err := url.PathUnescape(rctx.URLParam(queryParam))
	if err != nil {
		return Destination{Page: PageSearch}, fmt.Errorf("%w: %w", ErrMalformedQuery, err)
	}
	if strings.TrimSpace(query) == "" {
		return Destination{Page: PageSearch}, nil
	}

	return Destination{Page: PageProfile, Query: query}, nil
}

func notServed(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}
