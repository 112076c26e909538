// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// By the way, it is acceptable to annotate structs in this package with
// multiple frameworks dependent tags (e.g., as required by the JSON
// codec of the remote REST API) since adding more tags does not
// complicate definition of a struct, but can prevent unnecessary
// structs duplication.
package model

// Car models one vehicle listing as it is kept by the remote REST API.
// The ID is assigned by the server and is opaque for this module.
// Price is kept in the smallest currency unit (whole dollars or yen),
// so no floating point arithmetic is required for filtering.
type Car struct {
	ID           ID           `json:"id"`
	Brand        string       `json:"brand"`
	Model        string       `json:"model"`
	Year         int          `json:"year"`
	Price        int64        `json:"price"`
	Mileage      int          `json:"mileage"`
	FuelType     FuelType     `json:"fuelType"`
	Transmission Transmission `json:"transmission"`
	BodyType     BodyType     `json:"bodyType"`
	Color        string       `json:"color"`
	Location     string       `json:"location"`
	Description  string       `json:"description"`
	Features     []string     `json:"features"`
	Image        string       `json:"image"`
	Images       []Image      `json:"images,omitempty"`
}

// Identity returns the server-assigned identifier of car.
func (car Car) Identity() ID {
	return car.ID
}

// Draft returns the client-editable part of car, so it may be sent
// to the server without its ID.
func (car Car) Draft() CarDraft {
	return CarDraft{
		Brand:        car.Brand,
		Model:        car.Model,
		Year:         car.Year,
		Price:        car.Price,
		Mileage:      car.Mileage,
		FuelType:     car.FuelType,
		Transmission: car.Transmission,
		BodyType:     car.BodyType,
		Color:        car.Color,
		Location:     car.Location,
		Description:  car.Description,
		Features:     car.Features,
		Image:        car.Image,
	}
}

// CarDraft is a car listing which is not assigned an ID yet. It is
// the payload of a create request and the parsed result of the admin
// car form.
type CarDraft struct {
	Brand        string       `json:"brand"`
	Model        string       `json:"model"`
	Year         int          `json:"year"`
	Price        int64        `json:"price"`
	Mileage      int          `json:"mileage"`
	FuelType     FuelType     `json:"fuelType"`
	Transmission Transmission `json:"transmission"`
	BodyType     BodyType     `json:"bodyType"`
	Color        string       `json:"color"`
	Location     string       `json:"location"`
	Description  string       `json:"description"`
	Features     []string     `json:"features"`
	Image        string       `json:"image"`
}

// WithID turns the d draft into a Car having the given id.
// Attached images are not part of a draft and are left empty.
func (d CarDraft) WithID(id ID) Car {
	return Car{
		ID:           id,
		Brand:        d.Brand,
		Model:        d.Model,
		Year:         d.Year,
		Price:        d.Price,
		Mileage:      d.Mileage,
		FuelType:     d.FuelType,
		Transmission: d.Transmission,
		BodyType:     d.BodyType,
		Color:        d.Color,
		Location:     d.Location,
		Description:  d.Description,
		Features:     d.Features,
		Image:        d.Image,
	}
}

// Image is an uploaded picture as reported by the remote API.
type Image struct {
	ID  ID     `json:"id"`
	URL string `json:"url"`
}

// Identity returns the server-assigned identifier of img.
func (img Image) Identity() ID {
	return img.ID
}
