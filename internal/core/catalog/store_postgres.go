// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/loonia/internal/platform/database/schema"
	"github.com/taibuivan/loonia/internal/platform/dberr"
	"github.com/taibuivan/loonia/pkg/slice"
)

// PostgresStore reads products from the catalog.product table.
//
// Scalar columns exist for filtering and hold Normalize(field), written by
// [PostgresStore.InsertProducts]. Comparing them with normalized query values
// in SQL gives exactly the in-process result. The full product, sections and
// cards included, lives in the document column in the same shape as the Mongo
// collection.
type PostgresStore struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewPostgresStore returns a store over db.
func NewPostgresStore(db *pgxpool.Pool, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{db: db, logger: logger}
}

// FetchAll returns every product in creation order.
func (store *PostgresStore) FetchAll(context context.Context) ([]*Product, error) {
	return store.query(context, "", nil, "fetch_all_products")
}

// FindByField returns products matching filter.
//
// Part numbers live inside the document column, so that filter is applied in
// process over the full catalog.
func (store *PostgresStore) FindByField(context context.Context, filter FieldFilter) ([]*Product, error) {
	if filter.Field == FieldPartNumber {
		products, err := store.FetchAll(context)
		if err != nil {
			return nil, err
		}
		return slice.Filter(products, filter.Matches), nil
	}

	where, args := postgresFilter(filter)
	return store.query(context, where, args, "find_products")
}

// Count counts the rows matching filter.
func (store *PostgresStore) Count(context context.Context, filter FieldFilter) (int, error) {
	if filter.Field == FieldPartNumber {
		products, err := store.FindByField(context, filter)
		if err != nil {
			return 0, err
		}
		return len(products), nil
	}

	where, args := postgresFilter(filter)
	query := fmt.Sprintf(`SELECT count(*) FROM %s %s`, schema.CatalogProduct.Table, where)

	var total int
	if err := store.db.QueryRow(context, query, args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_products")
	}

	return total, nil
}

func (store *PostgresStore) query(context context.Context, where string, args []any, action string) ([]*Product, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s %s ORDER BY %s ASC, %s ASC`,
		schema.CatalogProduct.ID, schema.CatalogProduct.Document,
		schema.CatalogProduct.Table, where,
		schema.CatalogProduct.CreatedAt, schema.CatalogProduct.ID,
	)

	rows, err := store.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	products := make([]*Product, 0)
	for rows.Next() {
		var (
			id       string
			document []byte
		)
		if err := rows.Scan(&id, &document); err != nil {
			return nil, dberr.Wrap(err, action)
		}

		var doc productDocument
		if err := json.Unmarshal(document, &doc); err != nil {
			return nil, dberr.Wrap(fmt.Errorf("product %s: %w", id, err), action)
		}
		doc.ID = id

		products = append(products, doc.toProduct(context, store.logger))
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}

	return products, nil
}

// postgresFilter compiles filter into a WHERE clause over the normalized
// filter columns.
func postgresFilter(filter FieldFilter) (string, []any) {
	if filter.IsZero() {
		return "", nil
	}

	if filter.Field == FieldID {
		return fmt.Sprintf("WHERE %s = $1", schema.CatalogProduct.ID), []any{strings.TrimSpace(filter.Value)}
	}

	value := Normalize(filter.Value)

	// The breadcrumb head token starts the normalized breadcrumb, so a prefix
	// test on it covers equal and prefix matches.
	if filter.Field == FieldCategory {
		headOp := MatchPrefix
		if filter.Op == MatchContains {
			headOp = MatchContains
		}
		category, categoryArg := postgresClause(schema.CatalogProduct.Category, filter.Op, value, 1)
		breadcrumb, breadcrumbArg := postgresClause(schema.CatalogProduct.Breadcrumb, headOp, value, 2)
		return "WHERE " + category + " OR " + breadcrumb, []any{categoryArg, breadcrumbArg}
	}

	column, ok := map[string]string{
		FieldProductName: schema.CatalogProduct.ProductName,
		FieldFrames:      schema.CatalogProduct.Frames,
		FieldFamily:      schema.CatalogProduct.Family,
		FieldParentTitle: schema.CatalogProduct.ParentTitle,
	}[filter.Field]
	if !ok {
		return "", nil
	}

	// Frames is a comma-separated list, so any token match is a substring match.
	op := filter.Op
	if filter.Field == FieldFrames {
		op = MatchContains
	}

	clause, arg := postgresClause(column, op, value, 1)
	return "WHERE " + clause, []any{arg}
}

// postgresClause compares column with value using op, bound to placeholder n.
func postgresClause(column string, op MatchOp, value string, n int) (string, any) {
	if op == MatchPrefix || op == MatchContains {
		return fmt.Sprintf("%s LIKE $%d", column, n), likePattern(op, value)
	}
	return fmt.Sprintf("%s = $%d", column, n), value
}

// likePattern escapes LIKE wildcards in value and wraps it for op.
func likePattern(op MatchOp, value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
	if op == MatchContains {
		return "%" + escaped + "%"
	}
	return escaped + "%"
}

// InsertProducts writes products into the table, used to seed a database
// from a dump. Existing ids are replaced.
func (store *PostgresStore) InsertProducts(context context.Context, products []*Product) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (%s) DO UPDATE SET %s
	`,
		schema.CatalogProduct.Table, strings.Join(schema.CatalogProduct.Columns(), ", "),
		schema.CatalogProduct.ID, excludedAssignments(),
	)

	batch := &pgx.Batch{}
	for _, product := range products {
		doc := fromProduct(product)
		doc.ID = nil

		document, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("catalog: encode product %s: %w", product.ID, err)
		}

		args := append([]any{product.ID}, filterColumns(product)...)
		args = append(args, document, product.CreatedAt, product.UpdatedAt)
		batch.Queue(query, args...)
	}

	if err := store.db.SendBatch(context, batch).Close(); err != nil {
		return dberr.Wrap(err, "insert_products")
	}

	return nil
}

// excludedAssignments lists "col = EXCLUDED.col" for every column but the key.
func excludedAssignments() string {
	var sets []string
	for _, column := range schema.CatalogProduct.Columns() {
		if column == schema.CatalogProduct.ID {
			continue
		}
		sets = append(sets, column+" = EXCLUDED."+column)
	}
	return strings.Join(sets, ", ")
}

// filterColumns returns the normalized filter column values of product, in
// the order of [schema.CatalogProductTable.Columns].
func filterColumns(product *Product) []any {
	return []any{
		Normalize(product.ParentTitle), Normalize(product.Category), Normalize(product.SubCategory),
		Normalize(product.ProductName), Normalize(product.Breadcrumb), Normalize(product.Frames),
		Normalize(product.Family),
	}
}
