// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"slices"

	"github.com/taibuivan/loonia/internal/platform/apperr"
	"github.com/taibuivan/loonia/internal/platform/validate"
	"github.com/taibuivan/loonia/pkg/pagination"
	"github.com/taibuivan/loonia/pkg/query"
)

/*
ResolvePart finds every occurrence of a part number in the catalog.

Description: A part number is not unique. Different vehicles share parts and
one card may list the same number twice, so each occurrence yields its own
[PartHit]. Hits are ordered by product, then section, then card, then
position within the card, which keeps pagination stable across calls.

The store pre-filter only narrows the candidate set. Every part of every
candidate is checked here.

Parameters:
  - context: context.Context
  - q: Query (Term is the part number)

Returns:
  - pagination.Page[PartHit]: The requested window, TotalLength counts all hits
  - error: ValidationError on an empty number, NotFound when there is no hit
*/
func (service *Service) ResolvePart(context context.Context, q Query) (page pagination.Page[PartHit], err error) {
	defer func() { service.observe(context, resolverPart, err) }()

	number := Normalize(q.Term)
	if err := validate.New("No part number selected").Required("number", number).Err(); err != nil {
		return page, err
	}

	products, err := service.candidates(context, FieldFilter{Field: FieldPartNumber, Op: MatchEqual, Value: number})
	if err != nil {
		return page, err
	}

	var hits []PartHit
	for _, product := range products {
		hits = appendPartHits(hits, product, number)
	}

	if len(hits) == 0 {
		return page, apperr.NotFound("Part")
	}

	return paginate(hits, q, false), nil
}

// appendPartHits appends one hit per part of product whose normalized number
// equals number.
func appendPartHits(hits []PartHit, product *Product, number string) []PartHit {
	var (
		category string
		frames   []string
	)

	for _, group := range product.Groups {
		for _, card := range group.Cards {
			for _, part := range card.Parts {
				if Normalize(part.Number) != number {
					continue
				}

				// Product-level fields are computed once, on the first hit.
				if frames == nil {
					category = product.CategoryCode()
					frames = query.StringSlice(product.Frames)
					if frames == nil {
						frames = []string{}
					}
				}

				hits = append(hits, PartHit{
					ProductID:  product.ID,
					GroupTag:   group.Tag,
					CardID:     card.ID,
					CardTitle:  card.Title,
					CardImage:  card.ImageLink,
					PartNumber: part.Number,
					PartName:   part.Name,
					PartPrice:  part.Price,
					Category:   category,
					Frames:     slices.Clone(frames),
				})
			}
		}
	}

	return hits
}
