// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package navigation builds and resolves the client's route paths.
//
// Routes:
//
//	/                 search form
//	/profile/{query}  profile of the URL-encoded subject name
//	/history          past searches
//	/reports          reports placeholder
package navigation

import (
	"net/url"
	"strings"
)

const (
	RouteSearch  = "/"
	RouteHistory = "/history"
	RouteReports = "/reports"

	routeProfilePrefix  = "/profile/"
	routeProfilePattern = "/profile/{" + queryParam + "}"

	queryParam = "query"
)

// Page identifies a top-level screen.
type Page int

const (
	PageSearch Page = iota
	PageProfile
	PageHistory
	PageReports
)

func (p Page) String() string {
	switch p {
	case PageProfile:
		return "profile"
	case PageHistory:
		return "history"
	case PageReports:
		return "reports"
	default:
		return "search"
	}
}

// Destination is a resolved route.
type Destination struct {
	Page Page

	// Query is the decoded subject name. Set only for PageProfile.
	Query string
}

// ProfileRoute returns the route of the profile page for query, e.g.
// "Jane Doe" becomes "/profile/Jane%20Doe".
func ProfileRoute(query string) string {
	return routeProfilePrefix + url.PathEscape(strings.TrimSpace(query))
}

// Path returns the route that resolves back to d.
func (d Destination) Path() string {
	switch d.Page {
	case PageProfile:
		return ProfileRoute(d.Query)
	case PageHistory:
		return RouteHistory
	case PageReports:
		return RouteReports
	default:
		return RouteSearch
	}
}
