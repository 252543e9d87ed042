// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize trims surrounding whitespace and upper-cases s.
//
// Every resolver compares normalized query terms against normalized stored
// fields, so case and incidental whitespace never affect a match.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// A Caser keeps state and is not safe for concurrent use.
	return cases.Upper(language.Und).String(s)
}

// HeadToken returns the first whitespace-delimited token of Normalize(s).
func HeadToken(s string) string {
	fields := strings.Fields(Normalize(s))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
