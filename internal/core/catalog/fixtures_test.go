// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/taibuivan/loonia/internal/core/catalog"
)

// # Fixtures

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// card builds a card whose parts are given as number/name/price triples.
func card(id, title string, parts ...catalog.Part) catalog.Card {
	return catalog.Card{ID: id, Title: title, ImageLink: "https://img/" + id + ".png", Parts: parts}
}

func part(number, name, price string) catalog.Part {
	return catalog.Part{Number: number, Name: name, Price: price}
}

func group(tag string, cards ...catalog.Card) catalog.HrefGroup {
	return catalog.HrefGroup{Tag: tag, Cards: cards}
}

// sampleCatalog is a small mixed catalog in creation order.
func sampleCatalog() []*catalog.Product {
	return []*catalog.Product{
		{
			ID: "p1", Category: "TOYOTA", ProductName: "Toyota Corolla Engine", ParentTitle: "Engine Parts",
			Breadcrumb: "Toyota Corolla 1998", Frames: "LE, XLE, SE", Family: "(AE86)", CreatedAt: epoch,
			Groups: []catalog.HrefGroup{
				group("Engine",
					card("c1", "Cylinder head", part("123", "Bolt", "5"), part("456", "Nut", "3")),
					card("c2", "Gasket", part("789", "Seal", "12")),
				),
			},
		},
		{
			ID: "p2", Category: "HONDA", ProductName: "Honda Civic Brake", ParentTitle: "Brake Parts",
			Breadcrumb: "Honda Civic 2001", Frames: "EK9", Family: "(EK)", CreatedAt: epoch.Add(time.Hour),
			Groups: []catalog.HrefGroup{
				group("Brakes", card("c3", "Caliper", part("789", "Seal", "14"), part("321", "Pad", "40"))),
			},
		},
		{
			// No category field, classified by breadcrumb.
			ID: "p3", ProductName: "toyota hilux body", ParentTitle: "engine mounts",
			Breadcrumb: "  toyota hilux 2005", Frames: "XL", Family: "(AE86)", CreatedAt: epoch.Add(2 * time.Hour),
			Groups: []catalog.HrefGroup{
				group("Body", card("c4", "Door", part("999", "Hinge", "7"))),
			},
		},
	}
}

// # Test Doubles

// countingStore wraps a store and counts calls.
type countingStore struct {
	catalog.Store
	calls atomic.Int32
}

func (store *countingStore) FetchAll(context context.Context) ([]*catalog.Product, error) {
	store.calls.Add(1)
	return store.Store.FetchAll(context)
}

func (store *countingStore) FindByField(context context.Context, filter catalog.FieldFilter) ([]*catalog.Product, error) {
	store.calls.Add(1)
	return store.Store.FindByField(context, filter)
}

func (store *countingStore) Count(context context.Context, filter catalog.FieldFilter) (int, error) {
	store.calls.Add(1)
	return store.Store.Count(context, filter)
}

// failingStore fails every call with err.
type failingStore struct{ err error }

func (store failingStore) FetchAll(context.Context) ([]*catalog.Product, error) {
	return nil, store.err
}

func (store failingStore) FindByField(context.Context, catalog.FieldFilter) ([]*catalog.Product, error) {
	return nil, store.err
}

func (store failingStore) Count(context.Context, catalog.FieldFilter) (int, error) {
	return 0, store.err
}

// supersetStore ignores filters and returns the whole catalog, like a backend
// that cannot pre-filter.
type supersetStore struct{ products []*catalog.Product }

func (store supersetStore) FetchAll(context.Context) ([]*catalog.Product, error) {
	return store.products, nil
}

func (store supersetStore) FindByField(context.Context, catalog.FieldFilter) ([]*catalog.Product, error) {
	return store.products, nil
}

func (store supersetStore) Count(context.Context, catalog.FieldFilter) (int, error) {
	return len(store.products), nil
}

func newService(store catalog.Store) *catalog.Service {
	return catalog.NewService(store, discardLogger(), nil)
}

func ids(products []*catalog.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
