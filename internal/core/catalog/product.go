// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog implements the read-only query engine of the Loonia parts catalog.

A catalog is a sequence of [Product] documents. Each product is split into
named sections ([HrefGroup]) that hold listing [Card] entries, and every card
lists the [Part] records shown on that page.

Core Responsibility:

  - Resolution: category, sub-category, frame, family, title and part-number lookups.
  - Pagination: every list result is an ordered, windowed [pagination.Page].
  - Storage: the [Store] contract and its Mongo, Postgres, in-memory and cached backends.

Resolvers never mutate a product. The ingestion path that writes the catalog
lives outside this service.
*/
package catalog

import "time"

// # Domain Entities

// Product is one catalog entry, typically the parts page of a vehicle model.
type Product struct {
	ID          string      `json:"id"`
	ParentTitle string      `json:"parent_title,omitempty"`
	ImageLink   string      `json:"image_link,omitempty"`
	Alt         string      `json:"alt,omitempty"`
	Category    string      `json:"category,omitempty"`
	SubCategory string      `json:"subcategory,omitempty"`
	ProductName string      `json:"product_name,omitempty"`
	Breadcrumb  string      `json:"breadcrumb,omitempty"`
	Frames      string      `json:"frames,omitempty"`
	Family      string      `json:"family,omitempty"`
	Years       string      `json:"years,omitempty"`
	Generation  string      `json:"generation,omitempty"`
	Price       float64     `json:"price"`
	Purchased   int         `json:"purchased"`
	Thumbnail   Thumbnail   `json:"thumbnail"`
	Groups      []HrefGroup `json:"groups"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Thumbnail points at the hosted preview image of a product.
type Thumbnail struct {
	PublicID string `json:"public_id,omitempty"`
	URL      string `json:"url,omitempty"`
}

// HrefGroup is a named section of a product, for example one variant page.
type HrefGroup struct {
	ID    string `json:"id,omitempty"`
	Tag   string `json:"tag"`
	Cards []Card `json:"cards"`
}

// Card is one listing unit inside a section.
type Card struct {
	ID        string `json:"id,omitempty"`
	Href      string `json:"href,omitempty"`
	ImageLink string `json:"image_link,omitempty"`
	Alt       string `json:"alt,omitempty"`
	Title     string `json:"title,omitempty"`
	Parts     []Part `json:"parts"`
}

// Part is a single orderable item listed on a card.
//
// Prices are kept as the catalog stores them (free text such as "12.50").
type Part struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Price  string `json:"price"`
}

// CategoryCode returns the classification code of the product: the
// normalized category field, or the head token of the breadcrumb when the
// field is empty.
func (p *Product) CategoryCode() string {
	if code := Normalize(p.Category); code != "" {
		return code
	}
	return HeadToken(p.Breadcrumb)
}
