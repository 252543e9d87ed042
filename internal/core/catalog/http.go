// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/loonia/internal/platform/constants"
	requestutil "github.com/taibuivan/loonia/internal/platform/request"
	"github.com/taibuivan/loonia/internal/platform/respond"
	"github.com/taibuivan/loonia/pkg/pagination"
)

// # Handler Implementation

// Handler exposes the catalog resolvers over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a catalog [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with every catalog endpoint. All routes are
// read-only and public.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Products
	router.Get("/products", handler.listProducts)
	router.Get("/products/count", handler.countProducts)
	router.Get("/products/{id}", handler.getProduct)
	router.Get("/products/{id}/sections/{tag}", handler.getSection)

	// ## Searches
	router.Get("/categories/{code}/products", handler.byCategory)
	router.Get("/subcategories/{text}/products", handler.bySubCategory)
	router.Get("/frames/{code}/products", handler.byFrame)
	router.Get("/families/{family}/products", handler.byFamily)
	router.Get("/titles/{prefix}/products", handler.byTitle)
	router.Get("/parts/{number}", handler.byPart)

	return router
}

// # Products

func (handler *Handler) listProducts(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	page, err := handler.service.ListProducts(request.Context(), params.Page, params.Limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, page.Items, page.Meta())
}

func (handler *Handler) countProducts(writer http.ResponseWriter, request *http.Request) {
	total, err := handler.service.CountProducts(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int{constants.FieldTotal: total})
}

func (handler *Handler) getProduct(writer http.ResponseWriter, request *http.Request) {
	product, err := handler.service.GetProduct(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, product)
}

func (handler *Handler) getSection(writer http.ResponseWriter, request *http.Request) {
	section, err := handler.service.GetSection(request.Context(),
		requestutil.ID(request, "id"),
		requestutil.Param(request, "tag"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, section)
}

// # Searches

func (handler *Handler) byCategory(writer http.ResponseWriter, request *http.Request) {
	page, err := handler.service.ResolveCategory(request.Context(), queryFrom(request, "code"))
	writeProducts(writer, request, page, err)
}

func (handler *Handler) bySubCategory(writer http.ResponseWriter, request *http.Request) {
	q := queryFrom(request, "text")
	q.Scope = requestutil.Query(request, "category")

	page, err := handler.service.ResolveSubCategory(request.Context(), q)
	writeProducts(writer, request, page, err)
}

func (handler *Handler) byFrame(writer http.ResponseWriter, request *http.Request) {
	page, err := handler.service.ResolveFrame(request.Context(), queryFrom(request, "code"))
	writeProducts(writer, request, page, err)
}

func (handler *Handler) byFamily(writer http.ResponseWriter, request *http.Request) {
	page, err := handler.service.ResolveFamily(request.Context(), queryFrom(request, "family"))
	writeProducts(writer, request, page, err)
}

func (handler *Handler) byTitle(writer http.ResponseWriter, request *http.Request) {
	page, err := handler.service.ResolveTitle(request.Context(), queryFrom(request, "prefix"))
	writeProducts(writer, request, page, err)
}

func (handler *Handler) byPart(writer http.ResponseWriter, request *http.Request) {
	page, err := handler.service.ResolvePart(request.Context(), queryFrom(request, "number"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, page.Items, page.Meta())
}

// # Helpers

// queryFrom builds a [Query] from a path parameter and the page/limit query string.
//
// Limit stays zero when the client did not send one, which lets the frame and
// family resolvers return every match.
func queryFrom(request *http.Request, param string) Query {
	params := pagination.FromRequest(request)

	q := Query{Term: requestutil.Param(request, param), Page: params.Page}
	if pagination.Requested(request) {
		q.Limit = params.Limit
	}
	return q
}

func writeProducts(writer http.ResponseWriter, request *http.Request, page pagination.Page[*Product], err error) {
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, page.Items, page.Meta())
}
