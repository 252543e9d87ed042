// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for paginated results.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters,
// how an ordered sequence is windowed in memory, and how the resulting metadata
// is delivered in the API response envelope.
package pagination

import (
	"math"
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 10
	// MaxLimit is the upper bound for items per page accepted from HTTP clients.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds a normalized page and limit.
type Params struct {
	Page  int
	Limit int
}

// New builds [Params], replacing non-positive values with [DefaultPage] and [DefaultLimit].
func New(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return Params{Page: page, Limit: limit}
}

// Offset returns the number of items skipped before [Page].
//
// The product saturates at [math.MaxInt] instead of wrapping.
func (p Params) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Window returns the half-open range [start, end) of this page inside a
// sequence of length n. Both bounds are clamped to [0, n], so a page past the
// end yields start == end, however large Page or Limit are.
func (p Params) Window(n int) (start, end int) {
	if n <= 0 || p.Limit <= 0 {
		return 0, 0
	}

	skipped := max(p.Page-1, 0)
	if skipped > (n-1)/p.Limit {
		return n, n
	}

	start = skipped * p.Limit
	end = start + min(p.Limit, n-start)
	return start, end
}

// Slice applies the page window to items.
//
// The result is never nil. Requesting a page beyond the last one returns an
// empty slice rather than an error.
func Slice[T any](items []T, p Params) []T {
	start, end := p.Window(len(items))
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta constructs pagination metadata for a response.
//
// It automatically calculates the TotalPages based on the total count and limit.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = total / limit
		if total%limit != 0 {
			totalPages++
		}
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Page is one window of an ordered result sequence.
type Page[T any] struct {
	Items       []T `json:"items"`
	Page        int `json:"page"`
	Limit       int `json:"limit"`
	TotalPages  int `json:"total_pages"`
	TotalLength int `json:"total_length"`
}

// Paginate windows the full ordered sequence and records its metadata.
func Paginate[T any](all []T, p Params) Page[T] {
	meta := NewMeta(p.Page, p.Limit, len(all))
	return Page[T]{
		Items:       Slice(all, p),
		Page:        meta.Page,
		Limit:       meta.Limit,
		TotalPages:  meta.TotalPages,
		TotalLength: meta.Total,
	}
}

// All wraps the full sequence as a single page, used when a caller did not ask
// for pagination.
func All[T any](all []T) Page[T] {
	items := make([]T, len(all))
	copy(items, all)

	totalPages := 0
	if len(all) > 0 {
		totalPages = 1
	}

	return Page[T]{
		Items:       items,
		Page:        DefaultPage,
		Limit:       len(all),
		TotalPages:  totalPages,
		TotalLength: len(all),
	}
}

// Meta returns the response metadata for this page.
func (p Page[T]) Meta() Meta {
	return Meta{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.TotalLength,
		TotalPages: p.TotalPages,
	}
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
//
// # Clamping
//
// Invalid or negative values fall back to [DefaultPage] and [DefaultLimit];
// limits above [MaxLimit] are clamped to [MaxLimit].
func FromRequest(r *http.Request) Params {
	page := parseIntParam(r, "page", DefaultPage)
	limit := parseIntParam(r, "limit", DefaultLimit)

	if limit > MaxLimit {
		limit = MaxLimit
	}

	return New(page, limit)
}

// Requested reports whether the request carried an explicit "limit" parameter.
func Requested(r *http.Request) bool {
	return r.URL.Query().Get("limit") != ""
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
