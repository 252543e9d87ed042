// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"

	"github.com/taibuivan/loonia/internal/platform/apperr"
	"github.com/taibuivan/loonia/internal/platform/validate"
)

/*
GetSection returns the section of a product whose tag matches tag.

Parameters:
  - context: context.Context
  - productID: string
  - tag: string (Section heading, compared after normalization)

Returns:
  - *HrefGroup: The first section with a matching tag
  - error: ValidationError on missing input, NotFound for an unknown product or tag
*/
func (service *Service) GetSection(context context.Context, productID, tag string) (section *HrefGroup, err error) {
	defer func() { service.observe(context, resolverSection, err) }()

	want := Normalize(tag)
	validator := validate.New("No section selected").
		Required("id", productID).
		Required("tag", want)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	product, err := service.productByID(context, productID)
	if err != nil {
		return nil, err
	}

	for i := range product.Groups {
		if Normalize(product.Groups[i].Tag) == want {
			return &product.Groups[i], nil
		}
	}

	return nil, apperr.NotFound("Section")
}
