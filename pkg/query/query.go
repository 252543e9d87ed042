// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query holds small parsers for free-text list values found in query
// strings and stored documents.
package query

import (
	"strings"
)

// StringSlice parses a single comma-separated string
// into a trimmed slice of strings. Empty entries are dropped.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// ContainsToken reports whether the comma-separated list holds an entry for
// which match returns true. Entries are trimmed before matching.
func ContainsToken(list string, match func(token string) bool) bool {
	for _, token := range StringSlice(list) {
		if match(token) {
			return true
		}
	}
	return false
}
