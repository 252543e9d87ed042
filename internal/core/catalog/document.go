// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// # Storage Form

// productDocument is the stored shape of a product, shared by the Mongo
// collection and the Postgres document column. Field names follow the
// ingestion pipeline that writes the catalog.
type productDocument struct {
	ID          any               `bson:"_id,omitempty" json:"_id,omitempty"`
	ParentTitle string            `bson:"ParentTitle" json:"ParentTitle"`
	ImageLink   string            `bson:"ImageLink" json:"ImageLink"`
	Alt         string            `bson:"Alt" json:"Alt"`
	Category    string            `bson:"category" json:"category"`
	SubCategory string            `bson:"subcategory" json:"subcategory"`
	ProductName string            `bson:"product_name" json:"product_name"`
	Thumbnail   thumbnailDocument `bson:"thumbnail" json:"thumbnail"`
	Price       float64           `bson:"price" json:"price"`
	Family      string            `bson:"Family" json:"Family"`
	Years       string            `bson:"Years" json:"Years"`
	Frames      string            `bson:"Frames" json:"Frames"`
	Generation  string            `bson:"Generation" json:"Generation"`
	Breadcrumbs string            `bson:"BreadcrumbsH1" json:"BreadcrumbsH1"`
	ListOfHrefs []groupDocument   `bson:"ListOfHrefs" json:"ListOfHrefs"`
	Purchased   int               `bson:"purchased" json:"purchased"`
	CreatedAt   time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time         `bson:"updatedAt" json:"updatedAt"`
}

type thumbnailDocument struct {
	PublicID string `bson:"public_id" json:"public_id"`
	URL      string `bson:"url" json:"url"`
}

type groupDocument struct {
	ID    any            `bson:"_id,omitempty" json:"_id,omitempty"`
	H1Tag string         `bson:"H1Tag" json:"H1Tag"`
	Cards []cardDocument `bson:"cards" json:"cards"`
}

// cardDocument keeps the three parallel part arrays exactly as stored.
type cardDocument struct {
	ID          any      `bson:"_id,omitempty" json:"_id,omitempty"`
	Href        string   `bson:"Href" json:"Href"`
	ImageLink   string   `bson:"ImageLink" json:"ImageLink"`
	Alt         string   `bson:"Alt" json:"Alt"`
	HrefH1      string   `bson:"hrefH1" json:"hrefH1"`
	HrefNumbers []string `bson:"hrefNumbers" json:"hrefNumbers"`
	HrefNames   []string `bson:"hrefNames" json:"hrefNames"`
	HrefPrices  []string `bson:"hrefPrices" json:"hrefPrices"`
}

// # Decoding

/*
toProduct converts the stored form into a [Product].

Description: The parallel part arrays of each card are zipped into [Part]
records here, once. When the arrays disagree in length the card is truncated
to the shortest one and a debug event is logged, so no resolver ever sees a
misaligned part.
*/
func (doc *productDocument) toProduct(context context.Context, logger *slog.Logger) *Product {
	product := &Product{
		ID:          documentID(doc.ID),
		ParentTitle: doc.ParentTitle,
		ImageLink:   doc.ImageLink,
		Alt:         doc.Alt,
		Category:    doc.Category,
		SubCategory: doc.SubCategory,
		ProductName: doc.ProductName,
		Breadcrumb:  doc.Breadcrumbs,
		Frames:      doc.Frames,
		Family:      doc.Family,
		Years:       doc.Years,
		Generation:  doc.Generation,
		Price:       doc.Price,
		Purchased:   doc.Purchased,
		Thumbnail:   Thumbnail{PublicID: doc.Thumbnail.PublicID, URL: doc.Thumbnail.URL},
		Groups:      make([]HrefGroup, 0, len(doc.ListOfHrefs)),
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}

	for _, groupDoc := range doc.ListOfHrefs {
		group := HrefGroup{
			ID:    documentID(groupDoc.ID),
			Tag:   groupDoc.H1Tag,
			Cards: make([]Card, 0, len(groupDoc.Cards)),
		}

		for _, cardDoc := range groupDoc.Cards {
			card := Card{
				ID:        documentID(cardDoc.ID),
				Href:      cardDoc.Href,
				ImageLink: cardDoc.ImageLink,
				Alt:       cardDoc.Alt,
				Title:     cardDoc.HrefH1,
				Parts:     zipParts(cardDoc.HrefNumbers, cardDoc.HrefNames, cardDoc.HrefPrices),
			}

			if len(card.Parts) != max(len(cardDoc.HrefNumbers), len(cardDoc.HrefNames), len(cardDoc.HrefPrices)) {
				logger.DebugContext(context, "parts_truncated",
					slog.String("product_id", product.ID),
					slog.String("card_id", card.ID),
					slog.Int("numbers", len(cardDoc.HrefNumbers)),
					slog.Int("names", len(cardDoc.HrefNames)),
					slog.Int("prices", len(cardDoc.HrefPrices)),
				)
			}

			group.Cards = append(group.Cards, card)
		}

		product.Groups = append(product.Groups, group)
	}

	return product
}

// zipParts joins the parallel arrays by index, stopping at the shortest.
func zipParts(numbers, names, prices []string) []Part {
	n := min(len(numbers), len(names), len(prices))
	parts := make([]Part, n)
	for i := range n {
		parts[i] = Part{Number: numbers[i], Name: names[i], Price: prices[i]}
	}
	return parts
}

// fromProduct builds the stored form of p. It is the inverse of toProduct for
// well-formed cards and is used to seed backends.
func fromProduct(p *Product) *productDocument {
	doc := &productDocument{
		ParentTitle: p.ParentTitle,
		ImageLink:   p.ImageLink,
		Alt:         p.Alt,
		Category:    p.Category,
		SubCategory: p.SubCategory,
		ProductName: p.ProductName,
		Thumbnail:   thumbnailDocument{PublicID: p.Thumbnail.PublicID, URL: p.Thumbnail.URL},
		Price:       p.Price,
		Family:      p.Family,
		Years:       p.Years,
		Frames:      p.Frames,
		Generation:  p.Generation,
		Breadcrumbs: p.Breadcrumb,
		ListOfHrefs: make([]groupDocument, 0, len(p.Groups)),
		Purchased:   p.Purchased,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.ID != "" {
		doc.ID = p.ID
	}

	for _, group := range p.Groups {
		groupDoc := groupDocument{H1Tag: group.Tag, Cards: make([]cardDocument, 0, len(group.Cards))}
		if group.ID != "" {
			groupDoc.ID = group.ID
		}

		for _, card := range group.Cards {
			cardDoc := cardDocument{
				Href:        card.Href,
				ImageLink:   card.ImageLink,
				Alt:         card.Alt,
				HrefH1:      card.Title,
				HrefNumbers: make([]string, 0, len(card.Parts)),
				HrefNames:   make([]string, 0, len(card.Parts)),
				HrefPrices:  make([]string, 0, len(card.Parts)),
			}
			if card.ID != "" {
				cardDoc.ID = card.ID
			}
			for _, part := range card.Parts {
				cardDoc.HrefNumbers = append(cardDoc.HrefNumbers, part.Number)
				cardDoc.HrefNames = append(cardDoc.HrefNames, part.Name)
				cardDoc.HrefPrices = append(cardDoc.HrefPrices, part.Price)
			}
			groupDoc.Cards = append(groupDoc.Cards, cardDoc)
		}

		doc.ListOfHrefs = append(doc.ListOfHrefs, groupDoc)
	}

	return doc
}

// documentID renders a stored identifier as an opaque string.
func documentID(raw any) string {
	switch id := raw.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}
