// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taibuivan/loonia/internal/platform/dberr"
	"github.com/taibuivan/loonia/pkg/slice"
)

// mongoFieldPaths maps filter fields to document paths.
var mongoFieldPaths = map[string]string{
	FieldProductName: "product_name",
	FieldFrames:      "Frames",
	FieldFamily:      "Family",
	FieldParentTitle: "ParentTitle",
	FieldPartNumber:  "ListOfHrefs.cards.hrefNumbers",
}

// MongoStore reads products from a MongoDB collection.
type MongoStore struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

// NewMongoStore returns a store over collection.
func NewMongoStore(collection *mongo.Collection, logger *slog.Logger) *MongoStore {
	return &MongoStore{collection: collection, logger: logger}
}

// FetchAll returns every product in creation order.
func (store *MongoStore) FetchAll(context context.Context) ([]*Product, error) {
	return store.find(context, bson.D{}, "fetch_all_products")
}

// FindByField returns products matching filter, compiled to a case-insensitive query.
func (store *MongoStore) FindByField(context context.Context, filter FieldFilter) ([]*Product, error) {
	return store.find(context, mongoFilter(filter), "find_products")
}

// Count counts the documents matching filter.
func (store *MongoStore) Count(context context.Context, filter FieldFilter) (int, error) {
	total, err := store.collection.CountDocuments(context, mongoFilter(filter))
	if err != nil {
		return 0, dberr.Wrap(err, "count_products")
	}
	return int(total), nil
}

func (store *MongoStore) find(context context.Context, filter bson.D, action string) ([]*Product, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := store.collection.Find(context, filter, findOptions)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer cursor.Close(context)

	var docs []productDocument
	if err := cursor.All(context, &docs); err != nil {
		return nil, dberr.Wrap(err, action)
	}

	return slice.Map(docs, func(doc productDocument) *Product {
		return doc.toProduct(context, store.logger)
	}), nil
}

// nonASCII matches any value holding a character outside ASCII.
//
// For ASCII text the "i" flag and [Normalize] agree. Anything else, such as
// "ß" upper-casing to "SS" or a trailing no-break space, is always fetched and
// decided by the in-process check.
var nonASCII = primitive.Regex{Pattern: `[^\x00-\x7F]`}

/*
mongoFilter compiles filter into a MongoDB query document.

Description: String comparisons become quoted, case-insensitive regular
expressions that tolerate surrounding whitespace, or-ed with [nonASCII] so
the result is always a superset of [FieldFilter.Matches].
*/
func mongoFilter(filter FieldFilter) bson.D {
	if filter.IsZero() {
		return bson.D{}
	}

	if filter.Field == FieldID {
		id := strings.TrimSpace(filter.Value)
		if objectID, err := primitive.ObjectIDFromHex(id); err == nil {
			return bson.D{{Key: "_id", Value: objectID}}
		}
		return bson.D{{Key: "_id", Value: id}}
	}

	value := Normalize(filter.Value)

	// The breadcrumb head token starts the breadcrumb, so a prefix test on it
	// covers equal and prefix matches.
	if filter.Field == FieldCategory {
		headOp := MatchPrefix
		if filter.Op == MatchContains {
			headOp = MatchContains
		}
		return mongoAnyOf(
			mongoClauses("category", filter.Op, value),
			mongoClauses("BreadcrumbsH1", headOp, value),
		)
	}

	path, ok := mongoFieldPaths[filter.Field]
	if !ok {
		return bson.D{}
	}

	// Frames is a comma-separated list, so any token match is a substring match.
	op := filter.Op
	if filter.Field == FieldFrames {
		op = MatchContains
	}

	return mongoAnyOf(mongoClauses(path, op, value))
}

// mongoClauses returns the regex test on path plus its non-ASCII fallback.
func mongoClauses(path string, op MatchOp, value string) bson.A {
	return bson.A{
		bson.D{{Key: path, Value: mongoRegex(op, value)}},
		bson.D{{Key: path, Value: nonASCII}},
	}
}

// mongoAnyOf joins clause groups under one $or.
func mongoAnyOf(groups ...bson.A) bson.D {
	var clauses bson.A
	for _, group := range groups {
		clauses = append(clauses, group...)
	}
	return bson.D{{Key: "$or", Value: clauses}}
}

func mongoRegex(op MatchOp, value string) primitive.Regex {
	quoted := regexp.QuoteMeta(value)

	var pattern string
	switch op {
	case MatchPrefix:
		pattern = `^\s*` + quoted
	case MatchContains:
		pattern = quoted
	default:
		pattern = `^\s*` + quoted + `\s*$`
	}

	return primitive.Regex{Pattern: pattern, Options: "i"}
}
