// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction so handlers
never import chi directly.
*/
package requestutil

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

/*
ID retrieves a named URL parameter that identifies a resource.
*/
func ID(request *http.Request, name string) string {
	return Param(request, name)
}

/*
Param retrieves a named URL parameter from the request.

chi routes on the raw path when the request carries one (for example when a
segment contains an encoded slash), and the parameter is then still escaped.
*/
func Param(request *http.Request, name string) string {
	raw := chi.URLParam(request, name)
	if request.URL.RawPath == "" {
		return raw
	}
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

/*
Query returns a trimmed query-string value.
*/
func Query(request *http.Request, name string) string {
	return strings.TrimSpace(request.URL.Query().Get(name))
}
