// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"strings"

	"github.com/taibuivan/loonia/pkg/pagination"
	"github.com/taibuivan/loonia/pkg/query"
)

// # Resolver Input

// Query is the input of every list resolver.
type Query struct {
	// Term is the raw search term. Resolvers normalize it.
	Term string

	// Scope optionally restricts a sub-category search to one category code.
	Scope string

	// Page and Limit select the result window. Non-positive values fall back
	// to the pagination defaults, except for the frame and family resolvers
	// where a non-positive Limit returns every match as a single page.
	Page  int
	Limit int
}

// Params returns the normalized page window of q.
func (q Query) Params() pagination.Params {
	return pagination.New(q.Page, q.Limit)
}

// # Resolver Output

// PartHit is one occurrence of a part number inside the catalog.
type PartHit struct {
	ProductID  string   `json:"product_id"`
	GroupTag   string   `json:"group_tag"`
	CardID     string   `json:"card_id,omitempty"`
	CardTitle  string   `json:"card_title"`
	CardImage  string   `json:"card_image"`
	PartNumber string   `json:"part_number"`
	PartName   string   `json:"part_name"`
	PartPrice  string   `json:"part_price"`
	Category   string   `json:"category"`
	Frames     []string `json:"frames"`
}

// # Store Filters

// Field names understood by every [Store] implementation.
const (
	FieldID          = "id"
	FieldCategory    = "category"
	FieldProductName = "product_name"
	FieldFrames      = "frames"
	FieldFamily      = "family"
	FieldParentTitle = "parent_title"
	FieldPartNumber  = "part_number"
)

// MatchOp is the comparison applied by a [FieldFilter].
type MatchOp string

const (
	MatchEqual    MatchOp = "eq"
	MatchPrefix   MatchOp = "prefix"
	MatchContains MatchOp = "contains"
)

// FieldFilter narrows a store read to candidate products. The zero value
// selects everything.
type FieldFilter struct {
	Field string
	Op    MatchOp
	Value string
}

// IsZero reports whether f selects the whole catalog.
func (f FieldFilter) IsZero() bool {
	return f.Field == ""
}

/*
Matches applies f to p in process, with the same normalization the resolvers use.

Description: This is the reference semantics of a filter. Backends that
cannot express a filter natively fall back to it, and the in-memory store is
built on it.

  - FieldID compares the raw id.
  - FieldCategory checks the category field and the breadcrumb head token.
  - FieldFrames compares against each comma-separated frame token.
  - FieldPartNumber compares against every part number in every card.
*/
func (f FieldFilter) Matches(p *Product) bool {
	if f.IsZero() {
		return true
	}

	if f.Field == FieldID {
		return p.ID == strings.TrimSpace(f.Value)
	}

	want := Normalize(f.Value)
	test := func(candidate string) bool {
		return f.Op.apply(Normalize(candidate), want)
	}

	switch f.Field {
	case FieldCategory:
		return test(p.Category) || test(HeadToken(p.Breadcrumb))
	case FieldProductName:
		return test(p.ProductName)
	case FieldFrames:
		return query.ContainsToken(p.Frames, test)
	case FieldFamily:
		return test(p.Family)
	case FieldParentTitle:
		return test(p.ParentTitle)
	case FieldPartNumber:
		for _, group := range p.Groups {
			for _, card := range group.Cards {
				for _, part := range card.Parts {
					if test(part.Number) {
						return true
					}
				}
			}
		}
	}

	return false
}

// apply compares a normalized candidate with a normalized query value.
func (op MatchOp) apply(candidate, want string) bool {
	switch op {
	case MatchPrefix:
		return strings.HasPrefix(candidate, want)
	case MatchContains:
		return strings.Contains(candidate, want)
	default:
		return candidate == want
	}
}
