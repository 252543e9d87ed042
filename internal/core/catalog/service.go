// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"
	"slices"

	"github.com/taibuivan/loonia/internal/platform/apperr"
	"github.com/taibuivan/loonia/internal/platform/metrics"
	"github.com/taibuivan/loonia/internal/platform/validate"
	"github.com/taibuivan/loonia/pkg/pagination"
)

// Resolver names used as the "resolver" metric label.
const (
	resolverCategory    = "category"
	resolverSubCategory = "subcategory"
	resolverFrame       = "frame"
	resolverFamily      = "family"
	resolverTitle       = "title"
	resolverPart        = "part"
	resolverSection     = "section"
	resolverProduct     = "product"
	resolverList        = "list"
	resolverCount       = "count"
)

// # Service Layer

// Service runs the catalog resolvers against a [Store].
//
// # Concurrency
//
// Service holds no mutable state. Any number of goroutines may call it at
// once; each call works on the snapshot its store read returned.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewService constructs a [Service]. A nil metrics disables instrumentation.
func NewService(store Store, logger *slog.Logger, metrics *metrics.Metrics) *Service {
	return &Service{
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

// # Product Lookups

/*
GetProduct fetches a single product by its identifier.

Parameters:
  - context: context.Context
  - id: string (Opaque product identifier)

Returns:
  - *Product: The matching product
  - error: ValidationError on an empty id, NotFound if absent
*/
func (service *Service) GetProduct(context context.Context, id string) (product *Product, err error) {
	defer func() { service.observe(context, resolverProduct, err) }()

	if err := validate.New("No product selected").Required("id", id).Err(); err != nil {
		return nil, err
	}

	return service.productByID(context, id)
}

/*
ListProducts returns the whole catalog newest first, one page at a time.

Description: Stores return creation order, so the listing is that order
reversed. Listing is not a search, so an empty catalog yields an empty page
rather than NotFound.
*/
func (service *Service) ListProducts(context context.Context, page, limit int) (result pagination.Page[*Product], err error) {
	defer func() { service.observe(context, resolverList, err) }()

	if err := context.Err(); err != nil {
		return result, apperr.Internal(err)
	}

	products, err := service.store.FetchAll(context)
	if err != nil {
		return result, apperr.Wrap(err)
	}

	newest := slices.Clone(products)
	slices.Reverse(newest)

	return pagination.Paginate(newest, pagination.New(page, limit)), nil
}

// CountProducts returns the number of products in the catalog.
func (service *Service) CountProducts(context context.Context) (total int, err error) {
	defer func() { service.observe(context, resolverCount, err) }()

	if err := context.Err(); err != nil {
		return 0, apperr.Internal(err)
	}

	total, err = service.store.Count(context, FieldFilter{})
	if err != nil {
		return 0, apperr.Wrap(err)
	}

	return total, nil
}

// # Helpers

// productByID returns the product whose id equals id exactly.
func (service *Service) productByID(context context.Context, id string) (*Product, error) {
	products, err := service.candidates(context, FieldFilter{Field: FieldID, Op: MatchEqual, Value: id})
	if err != nil {
		return nil, err
	}

	for _, product := range products {
		if product.ID == id {
			return product, nil
		}
	}

	return nil, apperr.NotFound("Product")
}

/*
candidates asks the store for the products that may satisfy filter.

Description: Cancellation is checked before the store call and again before
the caller starts traversing, so an abandoned request does no further work.
Store failures surface as INTERNAL_ERROR with the cause kept for errors.Is.
*/
func (service *Service) candidates(context context.Context, filter FieldFilter) ([]*Product, error) {
	if err := context.Err(); err != nil {
		return nil, apperr.Internal(err)
	}

	products, err := service.store.FindByField(context, filter)
	if err != nil {
		return nil, apperr.Wrap(err)
	}

	if err := context.Err(); err != nil {
		return nil, apperr.Internal(err)
	}

	return products, nil
}

// observe records the outcome of one resolver call.
func (service *Service) observe(context context.Context, resolver string, err error) {
	outcome := metrics.OutcomeOK

	switch {
	case err == nil:
	case apperr.HasCode(err, apperr.CodeNotFound):
		outcome = metrics.OutcomeNotFound
	case apperr.HasCode(err, apperr.CodeValidation):
		outcome = metrics.OutcomeValidation
	default:
		outcome = metrics.OutcomeError
		service.logger.ErrorContext(context, "catalog_query_failed",
			slog.String("resolver", resolver),
			slog.Any("error", err),
		)
	}

	service.metrics.ObserveQuery(resolver, outcome)
}

// paginate windows matches, or returns them all when q carries no limit and
// unbounded is set.
func paginate[T any](matches []T, q Query, unbounded bool) pagination.Page[T] {
	if unbounded && q.Limit <= 0 {
		return pagination.All(matches)
	}
	return pagination.Paginate(matches, q.Params())
}
