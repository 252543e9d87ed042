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

// ResolveTitle lists products whose parent title starts with q.Term.
func (service *Service) ResolveTitle(context context.Context, q Query) (page pagination.Page[*Product], err error) {
	defer func() { service.observe(context, resolverTitle, err) }()

	prefix := Normalize(q.Term)
	if err := validate.New("No type selected").Required("prefix", prefix).Err(); err != nil {
		return page, err
	}

	products, err := service.candidates(context, FieldFilter{Field: FieldParentTitle, Op: MatchPrefix, Value: prefix})
	if err != nil {
		return page, err
	}

	matches := slice.Filter(products, func(product *Product) bool {
		return strings.HasPrefix(Normalize(product.ParentTitle), prefix)
	})
	if len(matches) == 0 {
		return page, apperr.NotFound("Type")
	}

	return paginate(matches, q, false), nil
}
