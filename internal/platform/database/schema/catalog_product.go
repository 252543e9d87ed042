// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the tables and columns of the PostgreSQL catalog so
// queries never hard-code identifiers.
package schema

// CatalogProductTable represents the 'catalog.product' table
type CatalogProductTable struct {
	Table       string
	ID          string
	ParentTitle string
	Category    string
	SubCategory string
	ProductName string
	Breadcrumb  string
	Frames      string
	Family      string
	Document    string
	CreatedAt   string
	UpdatedAt   string
}

// CatalogProduct is the schema definition for catalog.product
var CatalogProduct = CatalogProductTable{
	Table:       "catalog.product",
	ID:          "id",
	ParentTitle: "parenttitle",
	Category:    "category",
	SubCategory: "subcategory",
	ProductName: "productname",
	Breadcrumb:  "breadcrumb",
	Frames:      "frames",
	Family:      "family",
	Document:    "document",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns lists every column in insert order.
func (t CatalogProductTable) Columns() []string {
	return []string{
		t.ID, t.ParentTitle, t.Category, t.SubCategory, t.ProductName,
		t.Breadcrumb, t.Frames, t.Family, t.Document, t.CreatedAt, t.UpdatedAt,
	}
}
