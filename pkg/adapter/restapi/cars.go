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

const carResource = "car"

// ListCars fetches the full car collection.
func (c *Client) ListCars(ctx context.Context) ([]model.Car, error) {
	cars := []model.Car{}
	err := c.do(ctx, call{
		op: cerr.OpFetch, resource: "cars",
		method: http.MethodGet, path: carsPath,
	}, &cars)
	if err != nil {
		return nil, err
	}
	return cars, nil
}

// CreateCar posts d and returns the created car. A response with no
// id is rejected, so a blank car never reaches the collection.
func (c *Client) CreateCar(
	ctx context.Context, d model.CarDraft, token string,
) (model.Car, error) {
	cl, err := call{
		op: cerr.OpCreate, resource: carResource,
		method: http.MethodPost, path: carsPath, token: token,
	}.withJSON(d)
	if err != nil {
		return model.Car{}, cl.fail(ctx, err)
	}
	var car model.Car
	if err := c.do(ctx, cl, &car); err != nil {
		return model.Car{}, err
	}
	if car.ID.IsZero() {
		return model.Car{}, cl.incomplete(ctx, "id")
	}
	return car, nil
}

// UpdateCar puts car (including its ID) and returns the updated car
// as the server returned it. A response with no id is rejected.
func (c *Client) UpdateCar(
	ctx context.Context, car model.Car, token string,
) (model.Car, error) {
	cl, err := call{
		op: cerr.OpUpdate, resource: carResource,
		method: http.MethodPut, path: carsPath, token: token,
	}.withJSON(car)
	if err != nil {
		return model.Car{}, cl.fail(ctx, err)
	}
	var updated model.Car
	if err := c.do(ctx, cl, &updated); err != nil {
		return model.Car{}, err
	}
	if updated.ID.IsZero() {
		return model.Car{}, cl.incomplete(ctx, "id")
	}
	return updated, nil
}

// DeleteCar deletes the id car. The ID is sent as a multipart form.
func (c *Client) DeleteCar(ctx context.Context, id model.ID, token string) error {
	cl, err := call{
		op: cerr.OpDelete, resource: carResource,
		method: http.MethodDelete, path: carsPath, token: token,
	}.withForm(map[string]string{"id": id.String()})
	if err != nil {
		return cl.fail(ctx, err)
	}
	return c.do(ctx, cl, nil)
}
