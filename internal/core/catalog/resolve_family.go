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
ResolveFamily lists the products of a vehicle family.

Description: Families are stored wrapped in parentheses, e.g. "(AE86)".
Callers may send the code with or without them. Like frames, a query without
a limit returns every match as one page.
*/
func (service *Service) ResolveFamily(context context.Context, q Query) (page pagination.Page[*Product], err error) {
	defer func() { service.observe(context, resolverFamily, err) }()

	code := familyCode(q.Term)
	if err := validate.New("No family selected").Required("family", code).Err(); err != nil {
		return page, err
	}
	want := "(" + code + ")"

	products, err := service.candidates(context, FieldFilter{Field: FieldFamily, Op: MatchEqual, Value: want})
	if err != nil {
		return page, err
	}

	matches := slice.Filter(products, func(product *Product) bool {
		return Normalize(product.Family) == want
	})
	if len(matches) == 0 {
		return page, apperr.NotFound("Family")
	}

	return paginate(matches, q, true), nil
}

// familyCode normalizes term and strips one pair of surrounding parentheses.
func familyCode(term string) string {
	code := Normalize(term)
	if strings.HasPrefix(code, "(") && strings.HasSuffix(code, ")") {
		code = strings.TrimSpace(code[1 : len(code)-1])
	}
	return code
}
