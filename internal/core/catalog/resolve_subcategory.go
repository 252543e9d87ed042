// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"strings"

	"github.com/taibuivan/loonia/internal/platform/apperr"
	"github.com/taibuivan/loonia/internal/platform/validate"
	"github.com/taibuivan/loonia/pkg/pagination"
	"github.com/taibuivan/loonia/pkg/slice"
)

/*
ResolveSubCategory lists products whose name contains a text fragment.

Description: Sub-category names vary in form, so the match is a substring
test against the product name. When q.Scope is set only products of that
category code are kept.
*/
func (service *Service) ResolveSubCategory(context context.Context, q Query) (page pagination.Page[*Product], err error) {
	defer func() { service.observe(context, resolverSubCategory, err) }()

	text := Normalize(q.Term)
	if err := validate.New("No sub-category selected").Required("text", text).Err(); err != nil {
		return page, err
	}
	scope := Normalize(q.Scope)

	products, err := service.candidates(context, FieldFilter{Field: FieldProductName, Op: MatchContains, Value: text})
	if err != nil {
		return page, err
	}

	matches := slice.Filter(products, func(product *Product) bool {
		if scope != "" && product.CategoryCode() != scope {
			return false
		}
		return strings.Contains(Normalize(product.ProductName), text)
	})
	if len(matches) == 0 {
		return page, apperr.NotFound("Sub-category")
	}

	return paginate(matches, q, false), nil
}
