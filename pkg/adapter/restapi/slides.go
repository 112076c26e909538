// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package restapi

import (
	"context"
	"net/http"

	"github.com/momeni/car-dealer/pkg/core/cerr"
	"github.com/momeni/car-dealer/pkg/core/model"
)

const slideResource = "image slider"

func (c *Client) ListSlides(ctx context.Context) ([]model.ImageSlider, error) {
	slides := []model.ImageSlider{}
	err := c.do(ctx, call{
		op: cerr.OpFetch, resource: "image sliders",
		method: http.MethodGet, path: slidesPath,
	}, &slides)
	if err != nil {
		return nil, err
	}
	return slides, nil
}

func (c *Client) CreateSlide(
	ctx context.Context, d model.SlideDraft, token string,
) (model.ImageSlider, error) {
	cl, err := call{
		op: cerr.OpCreate, resource: slideResource,
		method: http.MethodPost, path: slidesPath, token: token,
	}.withJSON(d)
	if err != nil {
		return model.ImageSlider{}, cl.fail(ctx, err)
	}
	var s model.ImageSlider
	if err := c.do(ctx, cl, &s); err != nil {
		return model.ImageSlider{}, err
	}
	if s.ID.IsZero() {
		return model.ImageSlider{}, cl.incomplete(ctx, "id")
	}
	return s, nil
}

func (c *Client) UpdateSlide(
	ctx context.Context, s model.ImageSlider, token string,
) (model.ImageSlider, error) {
	cl, err := call{
		op: cerr.OpUpdate, resource: slideResource,
		method: http.MethodPut, path: slidesPath, token: token,
	}.withJSON(s)
	if err != nil {
		return model.ImageSlider{}, cl.fail(ctx, err)
	}
	var updated model.ImageSlider
	if err := c.do(ctx, cl, &updated); err != nil {
		return model.ImageSlider{}, err
	}
	if updated.ID.IsZero() {
		return model.ImageSlider{}, cl.incomplete(ctx, "id")
	}
	return updated, nil
}

func (c *Client) DeleteSlide(ctx context.Context, id model.ID, token string) error {
	cl, err := call{
		op: cerr.OpDelete, resource: slideResource,
		method: http.MethodDelete, path: slidesPath, token: token,
	}.withForm(map[string]string{"id": id.String()})
	if err != nil {
		return cl.fail(ctx, err)
	}
	return c.do(ctx, cl, nil)
}
