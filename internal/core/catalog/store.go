// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "context"

// Store is the read side of the catalog persistence.
//
// Implementations return products in creation order. FindByField may return a
// superset of the exact match; resolvers always re-check every candidate.
type Store interface {
	FetchAll(context context.Context) ([]*Product, error)
	FindByField(context context.Context, filter FieldFilter) ([]*Product, error)
	Count(context context.Context, filter FieldFilter) (int, error)
}
