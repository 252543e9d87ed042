// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"

	"github.com/taibuivan/loonia/internal/platform/apperr"
	"github.com/taibuivan/loonia/internal/platform/validate"
	"github.com/taibuivan/loonia/pkg/pagination"
	"github.com/taibuivan/loonia/pkg/query"
	"github.com/taibuivan/loonia/pkg/slice"
)

/*
ResolveFrame lists products whose frame list contains a code.

Description: The stored frame list is comma-separated free text. Each token
is compared for exact equality, since codes may be prefixes of one another
("LE" and "XLE"). Without a limit every match is returned as one page.
*/
func (service *Service) ResolveFrame(context context.Context, q Query) (page pagination.Page[*Product], err error) {
	defer func() { service.observe(context, resolverFrame, err) }()

	code := Normalize(q.Term)
	if err := validate.New("No frame selected").Required("code", code).Err(); err != nil {
		return page, err
	}

	products, err := service.candidates(context, FieldFilter{Field: FieldFrames, Op: MatchContains, Value: code})
	if err != nil {
		return page, err
	}

	matches := slice.Filter(products, func(product *Product) bool {
		return query.ContainsToken(product.Frames, func(token string) bool {
			return Normalize(token) == code
		})
	})
	if len(matches) == 0 {
		return page, apperr.NotFound("Frame")
	}

	return paginate(matches, q, true), nil
}
