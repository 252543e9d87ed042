// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/loonia/internal/core/catalog"
)

const dump = `[
  {
    "_id": {"$oid": "65a1f0c2e4b0a1b2c3d4e5f6"},
    "ParentTitle": "Engine Parts",
    "category": "TOYOTA",
    "product_name": "Corolla",
    "BreadcrumbsH1": "Toyota Corolla",
    "Frames": "LE, XLE",
    "price": 12,
    "createdAt": {"$date": "2024-01-01T00:00:00Z"},
    "ListOfHrefs": [
      {
        "H1Tag": "Engine",
        "cards": [
          {
            "_id": {"$oid": "65a1f0c2e4b0a1b2c3d4e5f7"},
            "hrefH1": "Head",
            "hrefNumbers": ["123", "456", "789"],
            "hrefNames": ["Bolt", "Nut"],
            "hrefPrices": ["5", "3", "9"]
          }
        ]
      }
    ]
  },
  {
    "_id": "plain-id",
    "Family": "(AE86)",
    "BreadcrumbsH1": "Honda Civic"
  }
]`

/*
TestLoadMemoryStore_TruncatesMisalignedCards decodes an export and checks the
part arrays are zipped to the shortest length.
*/
func TestLoadMemoryStore_TruncatesMisalignedCards(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	store, err := catalog.LoadMemoryStore(context.Background(), strings.NewReader(dump), logger)
	require.NoError(t, err)

	products, err := store.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	first := products[0]
	assert.Equal(t, "65a1f0c2e4b0a1b2c3d4e5f6", first.ID)
	assert.Equal(t, 12.0, first.Price)
	assert.Equal(t, 2024, first.CreatedAt.Year())

	parts := first.Groups[0].Cards[0].Parts
	assert.Equal(t, []catalog.Part{
		{Number: "123", Name: "Bolt", Price: "5"},
		{Number: "456", Name: "Nut", Price: "3"},
	}, parts)

	assert.Contains(t, logs.String(), `"msg":"parts_truncated"`)
	assert.Contains(t, logs.String(), `"product_id":"65a1f0c2e4b0a1b2c3d4e5f6"`)

	assert.Equal(t, "plain-id", products[1].ID)
	assert.Equal(t, "HONDA", products[1].CategoryCode())
}

/*
TestLoadMemoryStore_Invalid rejects malformed input.
*/
func TestLoadMemoryStore_Invalid(t *testing.T) {
	_, err := catalog.LoadMemoryStore(context.Background(), strings.NewReader(`{"not": "an array"}`), discardLogger())
	assert.Error(t, err)
}

/*
TestMemoryStore_Count applies filters to counts.
*/
func TestMemoryStore_Count(t *testing.T) {
	store := catalog.NewMemoryStore(sampleCatalog())

	total, err := store.Count(context.Background(), catalog.FieldFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	total, err = store.Count(context.Background(), catalog.FieldFilter{Field: catalog.FieldPartNumber, Op: catalog.MatchEqual, Value: "789"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}
