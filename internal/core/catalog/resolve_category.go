// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"

	"github.com/taibuivan/loonia/internal/platform/apperr"
	"github.com/taibuivan/loonia/internal/platform/validate"
	"github.com/taibuivan/loonia/pkg/pagination"
	"github.com/taibuivan/loonia/pkg/slice"
)

/*
ResolveCategory lists the products filed under a classification code.

Description: A product belongs to code when its normalized category equals
code. Products without a category field are classified by the first token of
their breadcrumb instead.

Parameters:
  - context: context.Context
  - q: Query (Term is the category code)

Returns:
  - pagination.Page[*Product]: Matches in creation order
  - error: ValidationError on an empty code, NotFound on no match
*/
func (service *Service) ResolveCategory(context context.Context, q Query) (page pagination.Page[*Product], err error) {
	defer func() { service.observe(context, resolverCategory, err) }()

	code := Normalize(q.Term)
	if err := validate.New("No classification selected").Required("code", code).Err(); err != nil {
		return page, err
	}

	products, err := service.candidates(context, FieldFilter{Field: FieldCategory, Op: MatchEqual, Value: code})
	if err != nil {
		return page, err
	}

	matches := slice.Filter(products, func(product *Product) bool {
		return product.CategoryCode() == code
	})
	if len(matches) == 0 {
		return page, apperr.NotFound("Category")
	}

	return paginate(matches, q, false), nil
}
