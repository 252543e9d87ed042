// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/taibuivan/loonia/pkg/slice"
)

// MemoryStore serves a fixed product slice. It backs the CLI file mode and
// the resolver tests.
type MemoryStore struct {
	products []*Product
}

// NewMemoryStore wraps products in their given order.
func NewMemoryStore(products []*Product) *MemoryStore {
	return &MemoryStore{products: products}
}

/*
LoadMemoryStore decodes a JSON array of stored product documents, the format
produced by mongoexport --jsonArray.

Description: Each element is read as MongoDB Extended JSON, so exported
"$oid" and "$date" wrappers decode as well as plain values.

Parameters:
  - context: context.Context
  - reader: io.Reader (JSON array of documents)
  - logger: *slog.Logger (receives truncation events)

Returns:
  - *MemoryStore: Store over the decoded products, in file order
  - error: Decoding failures
*/
func LoadMemoryStore(context context.Context, reader io.Reader, logger *slog.Logger) (*MemoryStore, error) {
	var raws []json.RawMessage
	if err := json.NewDecoder(reader).Decode(&raws); err != nil {
		return nil, fmt.Errorf("catalog: decode dump: %w", err)
	}

	products := make([]*Product, 0, len(raws))
	for i, raw := range raws {
		var doc productDocument
		if err := bson.UnmarshalExtJSON(raw, false, &doc); err != nil {
			return nil, fmt.Errorf("catalog: decode dump entry %d: %w", i, err)
		}
		products = append(products, doc.toProduct(context, logger))
	}

	return NewMemoryStore(products), nil
}

// FetchAll returns every product.
func (store *MemoryStore) FetchAll(context context.Context) ([]*Product, error) {
	if err := context.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(store.products), nil
}

// FindByField returns the products matching filter exactly.
func (store *MemoryStore) FindByField(context context.Context, filter FieldFilter) ([]*Product, error) {
	if err := context.Err(); err != nil {
		return nil, err
	}
	return slice.Filter(store.products, filter.Matches), nil
}

// Count returns the number of products matching filter.
func (store *MemoryStore) Count(context context.Context, filter FieldFilter) (int, error) {
	found, err := store.FindByField(context, filter)
	if err != nil {
		return 0, err
	}
	return len(found), nil
}
